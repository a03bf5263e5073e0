//go:build e2e

package quotes_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "tourdesk/internal/handler/dto/response"
	"tourdesk/tests/common/authtest"
	"tourdesk/tests/common/builder"
	"tourdesk/tests/common/httptest"
	"tourdesk/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	packagesURL = "/api/packages"
	quotesURL   = "/api/quotes"
)

type quoteSuite struct {
	e2e.SharedSuite
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(quoteSuite))
}

// nextWinterArrival returns a January date guaranteed to be in the future,
// inside the default package's "Winter" months.
func nextWinterArrival() time.Time {
	return time.Date(time.Now().Year()+1, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func (s *quoteSuite) createPackage(token string) uuid.UUID {
	t := s.T()
	body := builder.NewPackageBuilder().BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, packagesURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response resdto.PackageResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	return response.ID
}

func (s *quoteSuite) createQuote(token string, people, nights, rooms int) uuid.UUID {
	t := s.T()
	body := map[string]any{
		"customer_name":    "Dana Whitfield",
		"number_of_people": people,
		"number_of_nights": nights,
		"number_of_rooms":  rooms,
		"arrival_date":     nextWinterArrival().Format(time.RFC3339),
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response resdto.QuoteResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	return response.ID
}

func (s *quoteSuite) getQuote(token string, id uuid.UUID) resdto.QuoteResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, quotesURL+"/"+id.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response resdto.QuoteResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	return response
}

// waitForStatus polls until the quote's persisted sync status matches.
func (s *quoteSuite) waitForStatus(token string, id uuid.UUID, status string) resdto.QuoteResponse {
	t := s.T()
	var last resdto.QuoteResponse
	require.Eventually(t, func() bool {
		last = s.getQuote(token, id)
		return last.SyncStatus == status
	}, 5*time.Second, 25*time.Millisecond, "quote never reached status %s (last: %s)", status, last.SyncStatus)
	return last
}

func (s *quoteSuite) TestPackageRoleEnforcement() {
	s.Run("agents cannot create packages", func() {
		t := s.T()
		agentToken := authtest.LoginAgent(t, s.Router)

		body := builder.NewPackageBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, packagesURL, body, agentToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *quoteSuite) TestZeroRoomQuote() {
	s.Run("a quote without rooms persists and prices per person", func() {
		t := s.T()
		adminToken := authtest.LoginAdmin(t, s.Router)
		agentToken := authtest.LoginAgent(t, s.Router)

		packageID := s.createPackage(adminToken)
		quoteID := s.createQuote(agentToken, 2, 3, 0)

		created := s.getQuote(agentToken, quoteID)
		require.Equal(t, 0, created.NumberOfRooms)
		require.Equal(t, "synced", created.SyncStatus)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/link", quotesURL, quoteID), map[string]any{"package_id": packageID}, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		synced := s.waitForStatus(agentToken, quoteID, "synced")
		require.NotNil(t, synced.TotalPriceCents)
		require.Equal(t, int64(10000), *synced.TotalPriceCents)
		require.NotNil(t, synced.Breakdown)
		require.Nil(t, synced.Breakdown.PerRoom)
	})
}

func (s *quoteSuite) TestQuoteLifecycle() {
	s.Run("full pricing lifecycle", func() {
		t := s.T()
		adminToken := authtest.LoginAdmin(t, s.Router)
		agentToken := authtest.LoginAgent(t, s.Router)

		packageID := s.createPackage(adminToken)
		quoteID := s.createQuote(agentToken, 2, 3, 1)

		// Link settles synced at the tier 0, 3 nights winter price.
		linkBody := map[string]any{"package_id": packageID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/link", linkBody, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var linked resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &linked))
		require.Equal(t, "synced", linked.SyncStatus)
		require.NotNil(t, linked.TotalPriceCents)
		require.Equal(t, int64(10000), *linked.TotalPriceCents)
		require.NotNil(t, linked.LinkedPackage)
		require.Equal(t, packageID, linked.LinkedPackage.PackageID)
		require.Equal(t, "Winter", linked.LinkedPackage.PeriodLabel)

		// The read side exposes the settled state and the price breakdown.
		view := s.waitForStatus(agentToken, quoteID, "synced")

		price := int64(10000)
		perPerson := 50.0
		perRoom := 100.0
		perNight := 100.0 / 3.0
		calculated := int64(10000)
		expected := resdto.QuoteResponse{
			ID:              quoteID,
			CustomerName:    "Dana Whitfield",
			NumberOfPeople:  2,
			NumberOfNights:  3,
			NumberOfRooms:   1,
			TotalPriceCents: &price,
			SyncStatus:      "synced",
			LinkedPackage: &resdto.LinkedPackageResponse{
				PackageID:       packageID,
				PackageName:     "Alpine Highlights",
				PackageVersion:  1,
				TierIndex:       0,
				TierLabel:       "1-3 people",
				PeriodLabel:     "Winter",
				SelectedNights:  3,
				CalculatedCents: &calculated,
				Currency:        "EUR",
			},
			Breakdown: &resdto.BreakdownResponse{
				PerPerson: &perPerson,
				PerRoom:   &perRoom,
				PerNight:  &perNight,
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.QuoteResponse{}, "ArrivalDate", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApprox(0, 1e-9),
		}
		if diff := cmp.Diff(&expected, &view, opts...); diff != "" {
			t.Errorf("Quote response mismatch (-want +got):\n%s", diff)
		}

		// A parameter edit drops to out-of-sync, then the debounced
		// recomputation lands on the 4-6 people tier.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			quotesURL+"/"+quoteID.String(), map[string]any{"number_of_people": 5}, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var edited resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &edited))
		require.Equal(t, "out-of-sync", edited.SyncStatus)
		require.NotNil(t, edited.TotalPriceCents)
		require.Equal(t, int64(10000), *edited.TotalPriceCents, "stale price is kept while out of sync")

		view = s.waitForStatus(agentToken, quoteID, "synced")
		require.NotNil(t, view.TotalPriceCents)
		require.Equal(t, int64(15000), *view.TotalPriceCents)

		// A manual price diverging from the resolved one marks the quote custom.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			quotesURL+"/"+quoteID.String()+"/price", map[string]any{"amount_cents": 20000}, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var manual resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &manual))
		require.Equal(t, "custom", manual.SyncStatus)

		// Parameter edits never invalidate a custom price.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			quotesURL+"/"+quoteID.String(), map[string]any{"number_of_rooms": 2}, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var afterEdit resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &afterEdit))
		require.Equal(t, "custom", afterEdit.SyncStatus)

		// Reset abandons the override and re-derives the price.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/reset-price", nil, agentToken)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		view = s.waitForStatus(agentToken, quoteID, "synced")
		require.NotNil(t, view.TotalPriceCents)
		require.Equal(t, int64(15000), *view.TotalPriceCents)

		// A linked package cannot be deleted.
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			packagesURL+"/"+packageID.String(), nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// Unlinking keeps the price and frees the package.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/unlink", nil, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var unlinked resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &unlinked))
		require.Nil(t, unlinked.LinkedPackage)
		require.NotNil(t, unlinked.TotalPriceCents)
		require.Equal(t, int64(15000), *unlinked.TotalPriceCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			packagesURL+"/"+packageID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			quotesURL+"/"+quoteID.String(), nil, agentToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			quotesURL+"/"+quoteID.String(), nil, agentToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *quoteSuite) TestResolutionFailureAndOnRequest() {
	s.Run("resolution failures settle as error state", func() {
		t := s.T()
		adminToken := authtest.LoginAdmin(t, s.Router)
		agentToken := authtest.LoginAgent(t, s.Router)

		packageID := s.createPackage(adminToken)
		// 9 people exceed every tier.
		quoteID := s.createQuote(agentToken, 9, 3, 1)

		linkBody := map[string]any{"package_id": packageID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/link", linkBody, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var linked resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &linked))
		require.Equal(t, "error", linked.SyncStatus)
		require.NotNil(t, linked.ErrorMessage)
		require.Contains(t, *linked.ErrorMessage, "no pricing tier matches")
		require.NotNil(t, linked.LinkedPackage, "link survives a failed resolution")
	})

	s.Run("an on-request price needs manual entry and stays synced", func() {
		t := s.T()
		adminToken := authtest.LoginAdmin(t, s.Router)
		agentToken := authtest.LoginAgent(t, s.Router)

		packageID := s.createPackage(adminToken)
		// 5 people for 7 nights hits the on-request cell.
		quoteID := s.createQuote(agentToken, 5, 7, 1)

		linkBody := map[string]any{"package_id": packageID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/link", linkBody, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var linked resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &linked))
		require.Equal(t, "synced", linked.SyncStatus)
		require.Nil(t, linked.TotalPriceCents, "on-request never auto-fills the total")
		require.NotNil(t, linked.LinkedPackage)
		require.True(t, linked.LinkedPackage.PriceWasOnRequest)

		// Completing the on-request price by hand is not an override.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			quotesURL+"/"+quoteID.String()+"/price", map[string]any{"amount_cents": 42000}, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var manual resdto.QuoteSyncResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &manual))
		require.Equal(t, "synced", manual.SyncStatus)
		require.NotNil(t, manual.TotalPriceCents)
		require.Equal(t, int64(42000), *manual.TotalPriceCents)
	})
}

func (s *quoteSuite) TestPackageEditInvalidatesPinnedVersion() {
	s.Run("recalculate after a package edit reports the version change", func() {
		t := s.T()
		adminToken := authtest.LoginAdmin(t, s.Router)
		agentToken := authtest.LoginAgent(t, s.Router)

		packageID := s.createPackage(adminToken)
		quoteID := s.createQuote(agentToken, 2, 3, 1)

		linkBody := map[string]any{"package_id": packageID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/link", linkBody, agentToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Bump the package version out from under the quote's snapshot.
		updateBody := builder.NewPackageBuilder().BuildUpdatePricingRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s/pricing", packagesURL, packageID), updateBody, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			quotesURL+"/"+quoteID.String()+"/recalculate", nil, agentToken)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		view := s.waitForStatus(agentToken, quoteID, "error")
		require.NotNil(t, view.ErrorMessage)
		require.Contains(t, *view.ErrorMessage, "edited since linking")
	})
}
