//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"tourdesk/internal/infra"
	"tourdesk/internal/pkg/errs"
	"tourdesk/internal/usecase/commands"
	"tourdesk/internal/usecase/shared"
	"tourdesk/tests/common/builder"
	sharedmock "tourdesk/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type packageMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	packages *sharedmock.MockPackageRepository
	reads    *sharedmock.MockCommandReads
	db       *sharedmock.MockDB
}

func newPackageMocks(t *testing.T) (*packageMocks, commands.PackageCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &packageMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		packages: sharedmock.NewMockPackageRepository(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		db:       sharedmock.NewMockDB(ctrl),
	}
	m.tx.EXPECT().Packages().Return(m.packages).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	return m, commands.NewPackageUseCase(m.uow)
}

func TestCreatePackage(t *testing.T) {
	t.Run("persists a valid package and returns its identity", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		m.packages.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(nil)

		result, err := uc.CreatePackage(context.Background(), builder.NewPackageBuilder().BuildCreateCommand())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.PackageID)
		assert.Equal(t, 1, result.Version)
	})

	t.Run("rejects a pricing table without tiers", func(t *testing.T) {
		_, uc := newPackageMocks(t)

		req := builder.NewPackageBuilder().
			With(func(b *builder.PackageBuilder) { b.Tiers = nil }).
			BuildCreateCommand()
		_, err := uc.CreatePackage(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("rejects a price point referencing an unknown tier", func(t *testing.T) {
		_, uc := newPackageMocks(t)

		req := builder.NewPackageBuilder().BuildCreateCommand()
		req.Periods[0].Points[0].TierIndex = 9
		_, err := uc.CreatePackage(context.Background(), req)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		repoErr := infra.NewRepoErr(infra.KindDBFailure, "insert package", errors.New("connection reset"))
		m.packages.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(repoErr)

		_, err := uc.CreatePackage(context.Background(), builder.NewPackageBuilder().BuildCreateCommand())

		assert.Error(t, err)
	})
}

func TestUpdatePricing(t *testing.T) {
	updateReq := func() commands.UpdatePricingRequest {
		return builder.NewPackageBuilder().BuildUpdatePricingRequestDTO().ToCommand()
	}

	t.Run("replaces the table and returns the bumped version", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		m.packages.EXPECT().FindByID(gomock.Any(), m.db, pkg.ID()).Return(pkg, nil)
		m.packages.EXPECT().Update(gomock.Any(), m.db, pkg, 1).Return(nil)

		version, err := uc.UpdatePricing(context.Background(), pkg.ID(), updateReq())

		require.NoError(t, err)
		assert.Equal(t, 2, version)
	})

	t.Run("maps a missing package to the not-found sentinel", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		id := uuid.New()
		m.packages.EXPECT().FindByID(gomock.Any(), m.db, id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "package", nil))

		_, err := uc.UpdatePricing(context.Background(), id, updateReq())

		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})

	t.Run("maps a concurrent edit to the version-conflict sentinel", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		m.packages.EXPECT().FindByID(gomock.Any(), m.db, pkg.ID()).Return(pkg, nil)
		m.packages.EXPECT().Update(gomock.Any(), m.db, pkg, 1).
			Return(infra.NewRepoErr(infra.KindVersionConflict, "package", nil))

		_, err = uc.UpdatePricing(context.Background(), pkg.ID(), updateReq())

		assert.ErrorIs(t, err, errs.ErrVersionConflict)
	})

	t.Run("rejects an invalid replacement table before touching storage", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		req := updateReq()
		req.Nights = nil
		m.packages.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err = uc.UpdatePricing(context.Background(), pkg.ID(), req)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestDeletePackage(t *testing.T) {
	t.Run("deletes a package no quote links to", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		id := uuid.New()
		m.reads.EXPECT().LinkedQuoteCount(gomock.Any(), id).Return(int64(0), nil)
		m.packages.EXPECT().Delete(gomock.Any(), m.db, id).Return(nil)

		assert.NoError(t, uc.DeletePackage(context.Background(), id))
	})

	t.Run("refuses deletion while quotes still link the package", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		id := uuid.New()
		m.reads.EXPECT().LinkedQuoteCount(gomock.Any(), id).Return(int64(2), nil)
		m.packages.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := uc.DeletePackage(context.Background(), id)

		assert.ErrorIs(t, err, errs.ErrPackageInUse)
	})

	t.Run("maps a missing package to the not-found sentinel", func(t *testing.T) {
		m, uc := newPackageMocks(t)
		id := uuid.New()
		m.reads.EXPECT().LinkedQuoteCount(gomock.Any(), id).Return(int64(0), nil)
		m.packages.EXPECT().Delete(gomock.Any(), m.db, id).
			Return(infra.NewRepoErr(infra.KindNotFound, "package", nil))

		err := uc.DeletePackage(context.Background(), id)

		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})
}
