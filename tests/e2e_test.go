package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type gardenTrackerContainer struct {
	testcontainers.Container
	URI string
}

func setupGardenTracker(ctx context.Context, t *testing.T) (*gardenTrackerContainer, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "test-secret"
	}

	natPort := nat.Port(port + "/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":         port,
			"GIN_MODE":     "release",
			"DATABASE_URL": "sqlite:/tmp/garden.db",
			"JWT_SECRET":   jwtSecret,
		},
		WaitingFor: wait.ForHTTP("/api/plants").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == 200
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var gardenC *gardenTrackerContainer
	if container != nil {
		gardenC = &gardenTrackerContainer{Container: container}
	}
	if err != nil {
		return gardenC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return gardenC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return gardenC, err
	}

	gardenC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return gardenC, nil
}

func registerAndLogin(t *testing.T, baseURL, email string) string {
	regBody := fmt.Sprintf(`{"email": %q, "password": "hunter2hunter2"}`, email)
	resp, err := http.Post(baseURL+"/api/auth/register", "application/json", strings.NewReader(regBody))
	require.NoError(t, err)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Post(baseURL+"/api/auth/login", "application/json", strings.NewReader(regBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))

	token, ok := result["access_token"].(string)
	require.True(t, ok, "access_token should be a string")
	require.NotEmpty(t, token)
	return token
}

func doJSON(t *testing.T, method, url, token string, payload interface{}) (*http.Response, []byte) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestE2E_RegisterAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	gardenC, err := setupGardenTracker(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, gardenC)

	token := registerAndLogin(t, gardenC.URI, "alice@example.com")

	resp, body := doJSON(t, http.MethodGet, gardenC.URI+"/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "alice@example.com", me["email"])

	t.Run("duplicate email returns 409", func(t *testing.T) {
		regBody := `{"email": "alice@example.com", "password": "hunter2hunter2"}`
		resp, err := http.Post(gardenC.URI+"/api/auth/register", "application/json", strings.NewReader(regBody))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestE2E_BedLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	gardenC, err := setupGardenTracker(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, gardenC)

	token := registerAndLogin(t, gardenC.URI, "bob@example.com")

	resp, body := doJSON(t, http.MethodPost, gardenC.URI+"/api/garden-beds", token, map[string]interface{}{
		"name":         "North Bed",
		"shape":        "rectangle",
		"shape_params": map[string]interface{}{"width": 4, "height": 8},
		"unit_measure": "ft",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Logf("Response body: %s", string(body))
	}
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var bed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &bed))
	bedID := int(bed["id"].(float64))

	t.Run("invalid shape is rejected", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, gardenC.URI+"/api/garden-beds", token, map[string]interface{}{
			"name":         "Weird Bed",
			"shape":        "hexagon",
			"shape_params": map[string]interface{}{"side": 2},
			"unit_measure": "ft",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Contains(t, errResp["error"], "Shape must be one of")
	})

	t.Run("update re-validates shape", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/garden-beds/%d", gardenC.URI, bedID), token, map[string]interface{}{
			"shape":        "circle",
			"shape_params": map[string]interface{}{"radius": 3},
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("other users cannot see the bed", func(t *testing.T) {
		otherToken := registerAndLogin(t, gardenC.URI, "mallory@example.com")
		resp, _ := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/garden-beds/%d", gardenC.URI, bedID), otherToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete removes the bed", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/garden-beds/%d", gardenC.URI, bedID), token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/garden-beds/%d", gardenC.URI, bedID), token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestE2E_PlantingsAndRecommendations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	gardenC, err := setupGardenTracker(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, gardenC)

	token := registerAndLogin(t, gardenC.URI, "carol@example.com")

	resp, body := doJSON(t, http.MethodPost, gardenC.URI+"/api/plants", token, map[string]interface{}{
		"common_name":     "Tomato",
		"scientific_name": "Solanum lycopersicum",
		"rotation_family": "Nightshade",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var tomato map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &tomato))

	resp, body = doJSON(t, http.MethodPost, gardenC.URI+"/api/plants", token, map[string]interface{}{
		"common_name":     "Carrot",
		"scientific_name": "Daucus carota",
		"rotation_family": "Root Vegetable",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, gardenC.URI+"/api/garden-beds", token, map[string]interface{}{
		"name":         "Rotation Bed",
		"shape":        "rectangle",
		"shape_params": map[string]interface{}{"width": 4, "height": 4},
		"unit_measure": "ft",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var bed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &bed))
	bedID := int(bed["id"].(float64))

	resp, body = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/garden-beds/%d/plantings", gardenC.URI, bedID), token, map[string]interface{}{
		"plant_type_id": int(tomato["id"].(float64)),
		"year":          2025,
		"season":        "Summer",
		"date_planted":  "2025-05-20",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Logf("Response body: %s", string(body))
	}
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("recommendations exclude the last planted family", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/garden-beds/%d/recommendations", gardenC.URI, bedID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var recs map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &recs))
		assert.Equal(t, "Nightshade", recs["last_planted_family"])

		for _, item := range recs["recommendations"].([]interface{}) {
			plant := item.(map[string]interface{})
			assert.NotEqual(t, "Nightshade", plant["rotation_family"])
		}
	})

	t.Run("plantings list filters by active", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/garden-beds/%d/plantings?active=true", gardenC.URI, bedID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var plantings []map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &plantings))
		assert.Len(t, plantings, 1)
		assert.Equal(t, "Tomato", plantings[0]["plant_name"])
	})
}

func TestE2E_ExportImportRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	gardenC, err := setupGardenTracker(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, gardenC)

	token := registerAndLogin(t, gardenC.URI, "dave@example.com")

	resp, body := doJSON(t, http.MethodPost, gardenC.URI+"/api/plants", token, map[string]interface{}{
		"common_name":     "Lettuce",
		"scientific_name": "Lactuca sativa",
		"rotation_family": "Leafy Green",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, gardenC.URI+"/api/garden-beds", token, map[string]interface{}{
		"name":         "Salad Bed",
		"shape":        "circle",
		"shape_params": map[string]interface{}{"radius": 2},
		"unit_measure": "m",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, gardenC.URI+"/api/data/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	exported := body

	resp, body = doJSON(t, http.MethodPost, gardenC.URI+"/api/data/import", token, json.RawMessage(exported))
	if resp.StatusCode != http.StatusOK {
		t.Logf("Response body: %s", string(body))
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, gardenC.URI+"/api/garden-beds", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var beds []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &beds))
	require.Len(t, beds, 1)
	assert.Equal(t, "Salad Bed", beds[0]["name"])

	t.Run("missing keys are rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, gardenC.URI+"/api/data/import", token, map[string]interface{}{
			"plant_types": []interface{}{},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestE2E_InvalidToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	gardenC, err := setupGardenTracker(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, gardenC)

	t.Run("invalid token returns 401", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, gardenC.URI+"/api/garden-beds", "invalid_token_here", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing authorization header returns 401", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, gardenC.URI+"/api/garden-beds", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
