package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Chidozie222/Hackathon-sub000/internal/delivery/http/dto/order/request"
	"github.com/Chidozie222/Hackathon-sub000/internal/delivery/http/dto/order/response"
	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	orderdto "github.com/Chidozie222/Hackathon-sub000/internal/usecase/dto/order"
	orderusecase "github.com/Chidozie222/Hackathon-sub000/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/payment", h.ConfirmPayment)
		orders.POST("/:id/claim", h.ClaimOrder)
		orders.POST("/:id/release", h.ReleaseOrder)
		orders.POST("/:id/pickup", h.ConfirmPickup)
		orders.POST("/:id/delivery", h.ConfirmDelivery)
		orders.POST("/:id/cancel", h.RequestCancellation)
		orders.POST("/:id/dispute/resolve", h.ResolveDispute)
		orders.POST("/:id/location", h.UpdateLocation)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.CreateOrder(c.Request.Context(), &orderdto.CreateOrderInput{
		SellerID:        req.SellerID,
		ItemName:        req.ItemName,
		Price:           req.Price,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		BuyerContact:    req.BuyerContact,
		Agreement:       req.Agreement,
		PhotoRef:        req.PhotoRef,
		CallbackURL:     req.CallbackURL,
		CourierMode:     domain.CourierMode(req.CourierMode),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDomain(order, ""))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.uc.GetOrderByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomain(order, ""))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var orders []*domain.Order
	var err error

	switch {
	case c.Query("seller_id") != "":
		orders, err = h.uc.GetOrdersBySellerID(c.Query("seller_id"))
	case c.Query("courier_id") != "":
		orders, err = h.uc.GetOrdersByCourierID(c.Query("courier_id"))
	case c.Query("available") == "true":
		orders, err = h.uc.GetAvailableOrders()
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "one of seller_id, courier_id or available=true is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]*response.OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = response.FromDomain(order, "")
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.ConfirmPayment(c.Request.Context(), c.Param("id"), req.PaymentRef, req.SellerAddress)
	respondOrder(c, order, err)
}

func (h *OrderHandler) ClaimOrder(c *gin.Context) {
	var req request.ClaimOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.ClaimOrder(c.Request.Context(), c.Param("id"), req.CourierID, req.Token)
	respondOrder(c, order, err)
}

func (h *OrderHandler) ReleaseOrder(c *gin.Context) {
	var req request.ReleaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.ReleaseOrder(c.Request.Context(), c.Param("id"), req.CourierID)
	respondOrder(c, order, err)
}

func (h *OrderHandler) ConfirmPickup(c *gin.Context) {
	var req request.ConfirmPickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.ConfirmPickup(c.Request.Context(), c.Param("id"), req.CourierID, req.ScannedPayload)
	respondOrder(c, order, err)
}

func (h *OrderHandler) ConfirmDelivery(c *gin.Context) {
	var req request.ConfirmDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.ConfirmDelivery(c.Request.Context(), c.Param("id"), req.ScannedPayload)
	respondOrder(c, order, err)
}

func (h *OrderHandler) RequestCancellation(c *gin.Context) {
	var req request.RequestCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.RequestCancellation(c.Request.Context(), c.Param("id"), req.Reason)
	respondOrder(c, order, err)
}

func (h *OrderHandler) ResolveDispute(c *gin.Context) {
	order, err := h.uc.ResolveDispute(c.Request.Context(), c.Param("id"))
	respondOrder(c, order, err)
}

func (h *OrderHandler) UpdateLocation(c *gin.Context) {
	var req request.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.uc.UpdateCourierLocation(c.Request.Context(), c.Param("id"), req.CourierID, req.Lat, req.Lng)
	respondOrder(c, order, err)
}

// respondOrder maps a usecase result to the wire. A non-nil order together
// with an upstream error is the partial-success case: the local transition
// stands and the ledger failure is reported as a warning.
func respondOrder(c *gin.Context, order *domain.Order, err error) {
	var upstream *domain.UpstreamError
	if err != nil && order != nil && errors.As(err, &upstream) {
		c.JSON(http.StatusOK, response.FromDomain(order, upstream.Error()))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDomain(order, ""))
}

func respondError(c *gin.Context, err error) {
	var transition *domain.TransitionError
	if errors.As(err, &transition) {
		required := make([]string, len(transition.Required))
		for i, s := range transition.Required {
			required[i] = string(s)
		}
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Error:          transition.Error(),
			CurrentStatus:  string(transition.Current),
			RequiredStatus: strings.Join(required, "|"),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrOrderUnavailable),
		errors.Is(err, domain.ErrOrderExists),
		errors.Is(err, domain.ErrDisputeAlreadyRequested),
		errors.Is(err, domain.ErrDisputeAlreadyResolved):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrVerificationMismatch),
		errors.Is(err, domain.ErrNoDispute):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("internal error: %v", err)})
	}
}
