package service_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/geo"
	"github.com/atlasgoods/fulfillment-service/internal/service"
	svcmocks "github.com/atlasgoods/fulfillment-service/internal/service/mocks"
	trmmocks "github.com/atlasgoods/fulfillment-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) Resolve(city, address string) geo.Resolution {
	if strings.EqualFold(strings.TrimSpace(city), "casablanca") {
		return geo.Resolution{CityID: 1, City: "Casablanca", Sector: "Maarif", Resolved: true}
	}
	return geo.Resolution{City: strings.TrimSpace(city), Resolved: false}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *trmmocks.MockManager {
	txManager := trmmocks.NewMockManager(t)
	txManager.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return txManager
}

func validEvent() service.OrderEvent {
	return service.OrderEvent{
		Ref:       "4521",
		CreatedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		Total:     "325.00",
		Billing: &service.EventAddress{
			FirstName: "Amine",
			LastName:  "Benali",
			Company:   "Benali SARL",
			TaxID:     "TX-99",
			Address1:  "12 Rue des Orangers",
			City:      "Casablanca",
			Phone:     "+212600000001",
			Email:     "amine@example.com",
		},
		Items: []service.EventItem{
			{ProductID: "SKU-1", Quantity: 2, Price: "100.00"},
			{ProductID: "SKU-2", Quantity: 1, Price: "125.00"},
		},
	}
}

func TestIngest_CreatesOrder(t *testing.T) {
	repo := svcmocks.NewMockOrderRepo(t)
	txManager := passthroughTx(t)
	svc := service.NewIngestService(discardLogger(), txManager, repo, stubResolver{})

	ev := validEvent()

	repo.EXPECT().HasEventMarker(mock.Anything, entities.EventMarker("4521")).Return(false, nil).Once()
	repo.EXPECT().ExistsByDateAndTotal(mock.Anything, ev.CreatedAt, mock.Anything).Return(false, nil).Once()

	var created entities.Order
	repo.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (bool, error) {
			created = o
			return true, nil
		}).Once()
	repo.EXPECT().SaveItems(mock.Anything, "4521", mock.Anything).Return(nil).Once()
	repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.Ingest(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, service.IngestCreated, res)

	assert.Equal(t, "4521", created.ID)
	assert.Equal(t, entities.OrderStatusPending, created.Status)
	assert.Equal(t, "Amine Benali", created.Customer.Name)
	assert.Equal(t, "Casablanca", created.Customer.City)
	assert.Equal(t, "Maarif", created.Customer.Sector)
	assert.True(t, created.GeoResolved)
	assert.Equal(t, "325", created.Total.String())
	assert.Len(t, created.Items, 2)

	require.NotEmpty(t, created.Log)
	assert.Equal(t, entities.EventMarker("4521"), created.Log[0].Message)
	// 2*100 + 125 = 325, matches the source total, so no mismatch entry.
	assert.Len(t, created.Log, 1)
}

func TestIngest_PrefersShippingBlock(t *testing.T) {
	repo := svcmocks.NewMockOrderRepo(t)
	txManager := passthroughTx(t)
	svc := service.NewIngestService(discardLogger(), txManager, repo, stubResolver{})

	ev := validEvent()
	ev.Shipping = &service.EventAddress{
		FirstName: "Sara",
		LastName:  "Idrissi",
		Address1:  "7 Avenue Hassan II",
		City:      "Xyzzyville",
	}

	repo.EXPECT().HasEventMarker(mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.EXPECT().ExistsByDateAndTotal(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	var created entities.Order
	repo.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (bool, error) {
			created = o
			return true, nil
		}).Once()
	repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.Ingest(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, service.IngestCreated, res)

	// Delivery fields come from shipping, contact fields stay with billing.
	assert.Equal(t, "Sara Idrissi", created.Customer.Name)
	assert.Equal(t, "7 Avenue Hassan II", created.Customer.Address)
	assert.Equal(t, "+212600000001", created.Customer.Phone)
	assert.Equal(t, "amine@example.com", created.Customer.Email)

	assert.False(t, created.GeoResolved)
	assert.Equal(t, "Xyzzyville", created.RawCity)
}

func TestIngest_TotalMismatchIsFlaggedNotCorrected(t *testing.T) {
	repo := svcmocks.NewMockOrderRepo(t)
	txManager := passthroughTx(t)
	svc := service.NewIngestService(discardLogger(), txManager, repo, stubResolver{})

	ev := validEvent()
	ev.Total = "999.00"

	repo.EXPECT().HasEventMarker(mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.EXPECT().ExistsByDateAndTotal(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	var created entities.Order
	repo.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (bool, error) {
			created = o
			return true, nil
		}).Once()
	repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().AppendLogs(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.Ingest(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, service.IngestCreated, res)

	// Source total kept as-is.
	assert.Equal(t, "999.00", created.Total.StringFixed(2))

	var flagged bool
	for _, e := range created.Log {
		if strings.Contains(e.Message, "differs from item sum") {
			flagged = true
		}
	}
	assert.True(t, flagged, "expected a total mismatch log entry")
}

func TestIngest_Duplicates(t *testing.T) {
	t.Run("event marker", func(t *testing.T) {
		repo := svcmocks.NewMockOrderRepo(t)
		svc := service.NewIngestService(discardLogger(), trmmocks.NewMockManager(t), repo, stubResolver{})

		repo.EXPECT().HasEventMarker(mock.Anything, entities.EventMarker("4521")).Return(true, nil).Once()

		res, err := svc.Ingest(context.Background(), validEvent())
		require.NoError(t, err)
		assert.Equal(t, service.IngestDuplicate, res)
	})

	t.Run("date and total fallback", func(t *testing.T) {
		repo := svcmocks.NewMockOrderRepo(t)
		svc := service.NewIngestService(discardLogger(), trmmocks.NewMockManager(t), repo, stubResolver{})

		repo.EXPECT().HasEventMarker(mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.EXPECT().ExistsByDateAndTotal(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

		res, err := svc.Ingest(context.Background(), validEvent())
		require.NoError(t, err)
		assert.Equal(t, service.IngestDuplicate, res)
	})

	t.Run("lost insert race", func(t *testing.T) {
		repo := svcmocks.NewMockOrderRepo(t)
		txManager := passthroughTx(t)
		svc := service.NewIngestService(discardLogger(), txManager, repo, stubResolver{})

		repo.EXPECT().HasEventMarker(mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.EXPECT().ExistsByDateAndTotal(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
		repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil).Once()

		res, err := svc.Ingest(context.Background(), validEvent())
		require.NoError(t, err)
		assert.Equal(t, service.IngestDuplicate, res)
	})
}

func TestIngest_IgnoresNonOrderEvents(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(ev *service.OrderEvent)
	}{
		{name: "missing ref", mutate: func(ev *service.OrderEvent) { ev.Ref = "" }},
		{name: "missing billing", mutate: func(ev *service.OrderEvent) { ev.Billing = nil }},
		{name: "unparseable total", mutate: func(ev *service.OrderEvent) { ev.Total = "abc" }},
		{name: "zero quantity item", mutate: func(ev *service.OrderEvent) {
			ev.Items = []service.EventItem{{ProductID: "SKU-1", Quantity: 0, Price: "10.00"}}
		}},
		{name: "unparseable item price", mutate: func(ev *service.OrderEvent) {
			ev.Items = []service.EventItem{{ProductID: "SKU-1", Quantity: 1, Price: "n/a"}}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := svcmocks.NewMockOrderRepo(t)
			svc := service.NewIngestService(discardLogger(), trmmocks.NewMockManager(t), repo, stubResolver{})

			ev := validEvent()
			tc.mutate(&ev)

			res, err := svc.Ingest(context.Background(), ev)
			require.NoError(t, err)
			assert.Equal(t, service.IngestIgnored, res)
		})
	}
}
