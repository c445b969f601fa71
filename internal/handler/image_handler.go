package handler

import (
	"net/http"
	"strconv"

	"catalog-service/internal/store"
	"catalog-service/pkg/botfile"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ImageHandler streams bot-delivered product images through the same-origin
// proxy path the photo resolver hands out.
type ImageHandler struct {
	images *store.ImageStore
	bot    *botfile.Client
}

// NewImageHandler creates an image proxy handler.
func NewImageHandler(images *store.ImageStore, bot *botfile.Client) *ImageHandler {
	return &ImageHandler{images: images, bot: bot}
}

// ProductImage handles GET /products/:id/image
func (h *ImageHandler) ProductImage(c echo.Context) error {
	log := logger.FromEcho(c)

	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Warn("Invalid product id", zap.String("value", raw))
		prometheus.RecordImageProxy("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product image not found",
		})
	}

	ctx := c.Request().Context()
	fileID, ok, err := h.images.BotFileIDForProduct(ctx, uint(id))
	if err != nil {
		log.Error("Failed to look up product image",
			zap.Uint64("product_id", id),
			zap.Error(err))
		prometheus.RecordImageProxy("error")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product image",
		})
	}
	if !ok {
		prometheus.RecordImageProxy("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product image not found",
		})
	}

	body, contentType, err := h.bot.Open(ctx, fileID)
	if err != nil {
		log.Error("Failed to fetch bot image",
			zap.Uint64("product_id", id),
			zap.Error(err))
		prometheus.RecordImageProxy("error")
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": "Failed to fetch product image",
		})
	}
	defer body.Close()

	if contentType == "" {
		contentType = "image/jpeg"
	}

	// The proxy path is stable per product, so downstream caches can hold
	// the bytes even though the upstream fetch URL expires.
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	prometheus.RecordImageProxy("ok")
	log.Info("Streaming product image",
		zap.Uint64("product_id", id),
		zap.String("content_type", contentType))
	return c.Stream(http.StatusOK, contentType, body)
}
