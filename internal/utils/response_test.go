package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

func TestSendPaginatedNeverEmitsNullData(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		var items []string
		return utils.SendPaginated(c, items, dto.NewPaginationMeta(2, 5, 3))
	})

	resp := performRequest(t, app, http.MethodGet, "/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	decode(t, resp, &payload)

	require.Equal(t, []interface{}{}, payload["data"])
	require.Equal(t, map[string]interface{}{
		"page":       float64(2),
		"limit":      float64(5),
		"total":      float64(3),
		"totalPages": float64(1),
	}, payload["pagination"])
}

func TestSendErrorWithMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Internal server error", "boom")
	})

	resp := performRequest(t, app, http.MethodGet, "/")
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var payload dto.ErrorResponse
	decode(t, resp, &payload)
	require.Equal(t, "Internal server error", payload.Error)
	require.Equal(t, "boom", payload.Message)
}

func TestMissingFieldsMessageUsesJSONNames(t *testing.T) {
	validate := utils.NewValidator()

	err := validate.Struct(dto.CampaignRequest{Name: "Fall Promo", Budget: 100})
	require.Error(t, err)
	require.Equal(t, []string{"start_date", "end_date", "platform"}, utils.MissingFields(err))
	require.Equal(t, "Missing required fields: start_date, end_date, platform", utils.MissingFieldsMessage(err))

	require.Equal(t, "Invalid request payload", utils.MissingFieldsMessage(nil))
}

func TestPaginationMetaWithoutResults(t *testing.T) {
	meta := dto.NewPaginationMeta(1, 10, 0)
	require.Zero(t, meta.TotalPages)

	meta = dto.NewPaginationMeta(3, 10, 21)
	require.Equal(t, 3, meta.TotalPages)
}

func performRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
