package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetovr/go-grid-keeper/models"
)

func newTestClient(t *testing.T, handler http.Handler) DriverClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPDriverClient(HTTPClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestHTTPDriverClient_List(t *testing.T) {
	drivers := []models.Driver{
		{ID: "1", Name: "Lewis Hamilton", Team: "Mercedes", FirstSeason: 2007, Races: 332, Wins: 103},
		{ID: "2", Name: "Max Verstappen", Team: "Red Bull", FirstSeason: 2015, Races: 185, Wins: 54},
	}

	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/drivers", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"drivers": drivers,
			"total":   2,
			"hasMore": false,
		})
	})

	minWins := 50
	cli := newTestClient(t, handler)
	got, err := cli.List(context.Background(),
		models.ListFilter{Team: "merc", MinWins: &minWins, Skip: 10, Limit: 5},
		models.ListSort{By: "wins", Order: models.SortDesc},
	)
	require.NoError(t, err)
	assert.Equal(t, drivers, got)

	assert.Equal(t, "merc", gotQuery["team"][0])
	assert.Equal(t, "50", gotQuery["minWins"][0])
	assert.Equal(t, "10", gotQuery["skip"][0])
	assert.Equal(t, "5", gotQuery["limit"][0])
	assert.Equal(t, "wins", gotQuery["sortBy"][0])
	assert.Equal(t, "desc", gotQuery["sortOrder"][0])
	assert.NotContains(t, gotQuery, "name")
}

func TestHTTPDriverClient_Get(t *testing.T) {
	driver := models.Driver{ID: "3", Name: "Charles Leclerc", Team: "Ferrari", FirstSeason: 2018, Races: 123, Wins: 5}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/drivers/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(driver)
	})

	cli := newTestClient(t, handler)
	got, err := cli.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, driver, got)
}

func TestHTTPDriverClient_Create(t *testing.T) {
	payload := models.DriverPayload{Name: "Oscar Piastri", Team: "McLaren", FirstSeason: 2023, Races: 44, Wins: 4}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/drivers", r.URL.Path)

		var got models.DriverPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, payload, got)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(payload.WithID("7"))
	})

	cli := newTestClient(t, handler)
	created, err := cli.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)
	assert.Equal(t, payload.Name, created.Name)
}

func TestHTTPDriverClient_Update(t *testing.T) {
	wins := 10

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// only the id and the patched field travel over the wire
		assert.Equal(t, map[string]any{"id": "3", "wins": float64(10)}, body)

		_ = json.NewEncoder(w).Encode(models.Driver{ID: "3", Name: "X", Team: "Y", FirstSeason: 2018, Races: 20, Wins: 10})
	})

	cli := newTestClient(t, handler)
	got, err := cli.Update(context.Background(), "3", models.DriverPatch{Wins: &wins})
	require.NoError(t, err)
	assert.Equal(t, 10, got.Wins)
}

func TestHTTPDriverClient_Delete(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "3", r.URL.Query().Get("id"))

		_ = json.NewEncoder(w).Encode(models.Driver{ID: "3", Name: "X", Team: "Y", FirstSeason: 2018, Races: 20, Wins: 5})
	})

	cli := newTestClient(t, handler)
	got, err := cli.Delete(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)
}

func TestHTTPDriverClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{"not found", http.StatusNotFound, `{"error":"Driver not found"}`, ErrNotFound},
		{"bad request", http.StatusBadRequest, `{"error":"Wins cannot exceed races"}`, ErrInvalid},
		{"unprocessable", http.StatusUnprocessableEntity, `{"error":"bad"}`, ErrInvalid},
		{"server failure", http.StatusInternalServerError, ``, ErrUnreachable},
		{"bad gateway", http.StatusBadGateway, ``, ErrUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			cli := newTestClient(t, handler)
			_, err := cli.Get(context.Background(), "3")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestHTTPDriverClient_ErrorMessagePreserved(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Wins cannot exceed races"}`))
	})

	cli := newTestClient(t, handler)
	_, err := cli.Create(context.Background(), models.DriverPayload{})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "Wins cannot exceed races")
}

func TestHTTPDriverClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cli := NewHTTPDriverClient(HTTPClientConfig{BaseURL: url, Timeout: time.Second})

	_, err := cli.List(context.Background(), models.ListFilter{}, models.ListSort{})
	assert.ErrorIs(t, err, ErrUnreachable)

	assert.ErrorIs(t, cli.Ping(context.Background()), ErrUnreachable)
}

func TestHTTPDriverClient_Ping(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	cli := newTestClient(t, handler)
	assert.NoError(t, cli.Ping(context.Background()))
}
