package restapi

import (
	"errors"
	"net/http"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/app/view"
	"pixelity_site/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"
)

// APIViewResponse определяет структуру ответа для эндпоинтов представлений.
type APIViewResponse struct {
	View          entity.View `json:"view"`
	PriceUSD      float64     `json:"priceUSD,omitempty"`
	NativeSymbol  string      `json:"nativeSymbol,omitempty"`
	StatusMessage string      `json:"status_message"`
}

// APIErrorResponse is returned for every failed request.
type APIErrorResponse struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	View    *entity.View `json:"view,omitempty"`
}

const qrImageSize = 256

type hoverRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// WalletHandler обрабатывает HTTP запросы, связанные с подключением кошелька.
type WalletHandler struct {
	views    port.ViewRegistry
	networks port.NetworkDefinitionProvider // optional
	prices   port.NativePriceService        // optional
	limiter  *rate.Limiter
	logger   port.Logger
}

// NewWalletHandler создает новый экземпляр WalletHandler. networks and prices may be nil.
func NewWalletHandler(views port.ViewRegistry, networks port.NetworkDefinitionProvider, prices port.NativePriceService, limiter *rate.Limiter, l port.Logger) *WalletHandler {
	return &WalletHandler{
		views:    views,
		networks: networks,
		prices:   prices,
		limiter:  limiter,
		logger:   l.With("component", "wallet_handler"),
	}
}

// CreateViewHandler opens a new page view.
func (h *WalletHandler) CreateViewHandler(c *gin.Context) {
	v := h.views.Open()
	c.JSON(http.StatusCreated, APIViewResponse{View: v, StatusMessage: "View opened."})
}

// GetViewHandler returns the current state of a page view.
func (h *WalletHandler) GetViewHandler(c *gin.Context) {
	v, err := h.views.Get(c.Param("viewID"))
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, APIViewResponse{View: v, NativeSymbol: h.nativeSymbol(v), StatusMessage: "OK"})
}

// ConnectHandler runs the wallet connect flow for a page view.
func (h *WalletHandler) ConnectHandler(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, APIErrorResponse{Kind: "RateLimited", Message: "Too many connect attempts, try again shortly."})
		return
	}

	ctx := c.Request.Context()
	v, err := h.views.Connect(ctx, c.Param("viewID"))
	if err != nil {
		h.writeError(c, err, &v)
		return
	}

	response := APIViewResponse{View: v, NativeSymbol: h.nativeSymbol(v), StatusMessage: "Wallet connected."}
	if h.prices != nil && v.Info != nil {
		if price, ok := h.prices.GetNativePriceUSD(ctx, v.Info.NetworkName); ok {
			response.PriceUSD = price
		}
	}
	c.JSON(http.StatusOK, response)
}

// HoverHandler toggles the wallet details disclosure.
func (h *WalletHandler) HoverHandler(c *gin.Context) {
	var req hoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Kind: "BadRequest", Message: "body must be {\"visible\": true|false}"})
		return
	}
	v, err := h.views.SetHover(c.Param("viewID"), *req.Visible)
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, APIViewResponse{View: v, StatusMessage: "OK"})
}

// AddressQRHandler renders the connected address as a PNG QR code.
func (h *WalletHandler) AddressQRHandler(c *gin.Context) {
	v, err := h.views.Get(c.Param("viewID"))
	if err != nil {
		h.writeError(c, err, nil)
		return
	}
	if v.State != entity.Connected || v.Info == nil {
		c.JSON(http.StatusConflict, APIErrorResponse{Kind: "NotConnected", Message: "Connect a wallet first."})
		return
	}

	png, err := qrcode.Encode(v.Info.Address, qrcode.Medium, qrImageSize)
	if err != nil {
		h.logger.Error("Failed to generate QR code", "viewID", v.ID, "error", err)
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Kind: "Internal", Message: "Internal error."})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// nativeSymbol returns the coin symbol of the connected network, "" when unknown.
func (h *WalletHandler) nativeSymbol(v entity.View) string {
	if h.networks == nil || v.Info == nil {
		return ""
	}
	def, ok := h.networks.GetNetworkDefinitionByName(v.Info.NetworkName)
	if !ok {
		return ""
	}
	return def.NativeSymbol
}

func (h *WalletHandler) writeError(c *gin.Context, err error, v *entity.View) {
	if errors.Is(err, view.ErrViewNotFound) {
		c.JSON(http.StatusNotFound, APIErrorResponse{Kind: "ViewNotFound", Message: "Unknown or expired view; reload the page."})
		return
	}
	if v != nil && v.ID == "" {
		v = nil
	}

	kind := entity.ConnectionErrorKindOf(err)
	switch kind {
	case entity.KindProviderUnavailable:
		c.JSON(http.StatusServiceUnavailable, APIErrorResponse{Kind: string(kind), Message: entity.ProviderUnavailableMessage, View: v})
	case entity.KindUserRejected:
		c.JSON(http.StatusConflict, APIErrorResponse{Kind: string(kind), Message: "The wallet connection was not authorized.", View: v})
	case entity.KindQueryFailed:
		c.JSON(http.StatusBadGateway, APIErrorResponse{Kind: string(kind), Message: "The wallet provider could not answer.", View: v})
	default:
		h.logger.Error("Unexpected handler error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Kind: "Internal", Message: "Internal error."})
	}
}
