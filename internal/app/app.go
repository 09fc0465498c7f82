package app

import (
	"fmt"
	"inventory/internal/app/deps"
	"inventory/internal/app/services"
	"inventory/internal/http/handlers/auth"
	loginwithemail "inventory/internal/http/handlers/auth/log_in_with_email"
	logout "inventory/internal/http/handlers/auth/log_out"
	resetpassword "inventory/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "inventory/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "inventory/internal/http/handlers/auth/sign_up_with_email"
	"inventory/internal/http/handlers/products"
	createproduct "inventory/internal/http/handlers/products/create_product"
	deleteproduct "inventory/internal/http/handlers/products/delete_product"
	getproduct "inventory/internal/http/handlers/products/get_product"
	listuserproducts "inventory/internal/http/handlers/products/list_user_products"
	productevents "inventory/internal/http/handlers/products/product_events"
	updateproduct "inventory/internal/http/handlers/products/update_product"
	"inventory/internal/http/handlers/response"
	me "inventory/internal/http/handlers/user/me"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(deps *deps.Deps, s *services.Services) chi.Router {
	productPath := fmt.Sprintf("/{%s}", products.URL_PARAM_PRODUCT_ID)

	productsRouter := chi.NewRouter()
	productsRouter.Use(auth.RequireAuthToken)
	productsRouter.Method(http.MethodGet, "/", listuserproducts.New(s.ListUserProducts))
	productsRouter.Method(http.MethodPost, "/", createproduct.New(s.CreateProduct))
	productsRouter.Method(
		http.MethodGet,
		"/events",
		productevents.New(deps.Logger, deps.SseServer, s.GetUserBySessionToken),
	)
	productsRouter.Method(http.MethodGet, productPath, getproduct.New(s.GetProduct))
	productsRouter.Method(http.MethodPut, productPath, updateproduct.New(s.UpdateProduct))
	productsRouter.Method(http.MethodDelete, productPath, deleteproduct.New(s.DeleteProduct))

	v1Router := chi.NewRouter()
	v1Router.Method(http.MethodPost, "/register", signupwithemail.New(s.SignUpWithEmail))
	v1Router.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	v1Router.Method(
		http.MethodPost,
		"/forgot-password",
		sendpasswordresettoken.New(s.SendPasswordResetToken, deps.Config.IsTestMode),
	)
	v1Router.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))
	v1Router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuthToken)
		r.Method(http.MethodGet, "/user", me.New(s.GetUserBySessionToken))
		r.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	})
	v1Router.Mount("/products", productsRouter)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{sendpasswordresettoken.TEST_TOKEN_HEADER},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.NotFound(func(rw http.ResponseWriter, r *http.Request) {
		response.RenderError(rw, "Not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(rw http.ResponseWriter, r *http.Request) {
		response.RenderError(rw, "Method not allowed", http.StatusMethodNotAllowed)
	})
	router.Mount("/v1", v1Router)
	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    address,
	}
}
