package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"

	"WANDERPLAN_BACK-END/internal/models"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func suggestionRows(mock pgxmock.PgxPoolIface) *pgxmock.Rows {
	rating := 4.8
	review := "Top sushi"
	return mock.NewRows([]string{"name", "location", "rating", "review"}).
		AddRow("Sukiyabashi Jiro", "Ginza, Tokyo", &rating, &review).
		AddRow("Ichiran Shibuya", "Shibuya, Tokyo", (*float64)(nil), (*string)(nil))
}

func TestForCityWithoutRedis(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT name, location, rating, review\s+FROM reference_places`).
		WithArgs("Tokyo", "restaurant").
		WillReturnRows(suggestionRows(mock))

	svc := NewSuggestions(mock, nil, time.Minute)
	got, err := svc.ForCity(context.Background(), "Tokyo", models.TypeRestaurant)
	if err != nil {
		t.Fatalf("for city: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Sukiyabashi Jiro" || got[1].Rating != nil {
		t.Fatalf("suggestions = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestForCitySecondCallServedFromCache(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM reference_places`).
		WithArgs("Tokyo", "restaurant").
		WillReturnRows(suggestionRows(mock))

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewSuggestions(mock, client, time.Minute)
	ctx := context.Background()

	first, err := svc.ForCity(ctx, "Tokyo", models.TypeRestaurant)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	// the single ExpectQuery above is the only DB round trip allowed
	second, err := svc.ForCity(ctx, "Tokyo", models.TypeRestaurant)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(second) != len(first) || second[0].Name != first[0].Name {
		t.Fatalf("cache returned %+v, want %+v", second, first)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestForCityCacheExpiryHitsDatabaseAgain(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM reference_places`).
		WithArgs("Tokyo", "hotel").
		WillReturnRows(mock.NewRows([]string{"name", "location", "rating", "review"}).
			AddRow("Park Hyatt Tokyo", "Shinjuku", (*float64)(nil), (*string)(nil)))
	mock.ExpectQuery(`FROM reference_places`).
		WithArgs("Tokyo", "hotel").
		WillReturnRows(mock.NewRows([]string{"name", "location", "rating", "review"}).
			AddRow("Park Hyatt Tokyo", "Shinjuku", (*float64)(nil), (*string)(nil)))

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewSuggestions(mock, client, time.Second)
	ctx := context.Background()

	if _, err := svc.ForCity(ctx, "Tokyo", models.TypeHotel); err != nil {
		t.Fatalf("first call: %v", err)
	}
	server.FastForward(2 * time.Second)
	if _, err := svc.ForCity(ctx, "Tokyo", models.TypeHotel); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestForCityRequiresCity(t *testing.T) {
	svc := NewSuggestions(newMock(t), nil, time.Minute)
	if _, err := svc.ForCity(context.Background(), "  ", models.TypeHotel); err == nil {
		t.Fatal("expected error for empty city")
	}
}
