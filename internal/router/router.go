package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reservabar/internal/auth"
	"reservabar/internal/config"
	apperrors "reservabar/internal/errors"
	"reservabar/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	resolver *auth.SessionResolver,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tableHandler *handler.TableHandler,
	reservationHandler *handler.ReservationHandler,
	promotionHandler *handler.PromotionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/promotions", promotionHandler.ListPromotions)
	api.GET("/promotions/:id", promotionHandler.GetPromotion)

	// Secured routes: echo-jwt extracts the bearer token, the session
	// resolver validates it and loads the active identity into context.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return resolver.ResolveToken(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrUnauthenticated.Error(),
				Code:  "UNAUTHENTICATED",
			})
		},
	}))

	secured.GET("/me", userHandler.Me)

	// User routes
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Table routes
	secured.GET("/tables", tableHandler.ListTables)
	secured.GET("/tables/:id", tableHandler.GetTable)
	secured.POST("/tables", tableHandler.CreateTable)
	secured.PUT("/tables/:id", tableHandler.UpdateTable)
	secured.DELETE("/tables/:id", tableHandler.DeleteTable)

	// Reservation routes
	secured.POST("/reservations", reservationHandler.CreateReservation)
	secured.GET("/reservations", reservationHandler.ListReservations)
	secured.GET("/reservations/:id", reservationHandler.GetReservation)
	secured.DELETE("/reservations/:id", reservationHandler.CancelReservation)

	// Promotion management
	secured.POST("/promotions", promotionHandler.CreatePromotion)
	secured.PUT("/promotions/:id", promotionHandler.UpdatePromotion)
	secured.DELETE("/promotions/:id", promotionHandler.DeletePromotion)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
