package routing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/logger"
	"go.uber.org/zap"
)

var validVehicleTypes = map[string]bool{
	"car":           true,
	"bike":          true,
	"suv":           true,
	"electric_car":  true,
	"electric_bike": true,
}

var validFuelTypes = map[string]bool{
	"petrol":   true,
	"diesel":   true,
	"cng":      true,
	"electric": true,
}

// Handler handles HTTP requests for route optimization
type Handler struct {
	service *Service
}

// NewHandler creates a new routing handler and registers the vehicle and
// fuel enum validators on gin's binding engine.
func NewHandler(service *Service) *Handler {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
			return validVehicleTypes[fl.Field().String()]
		})
		v.RegisterValidation("fueltype", func(fl validator.FieldLevel) bool {
			return validFuelTypes[fl.Field().String()]
		})
	}
	return &Handler{service: service}
}

// RegisterRoutes registers all routing routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/routes")
	{
		routes.POST("/optimize", h.Optimize)
		routes.GET("/vehicles", h.Vehicles)
	}
}

// Optimize handles route optimization requests
func (h *Handler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	resp, err := h.service.Optimize(c.Request.Context(), &req)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		logger.ErrorContext(c.Request.Context(), "route optimization failed", zap.Error(err))
		c.Error(err)
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to optimize route")
		return
	}

	common.SuccessResponse(c, resp)
}

// Vehicles lists the supported vehicle/fuel combinations
func (h *Handler) Vehicles(c *gin.Context) {
	common.SuccessResponse(c, gin.H{"vehicles": h.service.Vehicles()})
}
