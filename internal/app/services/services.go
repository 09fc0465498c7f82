package services

import (
	"inventory/internal/app/deps"
	drl "inventory/internal/core/domain/rate_limiter"
	"inventory/internal/core/services"
	"inventory/internal/core/services/auth"
	createproduct "inventory/internal/core/services/create_product"
	deleteproduct "inventory/internal/core/services/delete_product"
	getproduct "inventory/internal/core/services/get_product"
	getuserbysessiontoken "inventory/internal/core/services/get_user_by_session_token"
	listuserproducts "inventory/internal/core/services/list_user_products"
	loginwithemail "inventory/internal/core/services/log_in_with_email"
	logout "inventory/internal/core/services/log_out"
	ratelimiting "inventory/internal/core/services/rate_limiting"
	recordproductsale "inventory/internal/core/services/record_product_sale"
	resetpassword "inventory/internal/core/services/reset_password"
	sendpasswordresettoken "inventory/internal/core/services/send_password_reset_token"
	signupwithemail "inventory/internal/core/services/sign_up_with_email"
	updateproduct "inventory/internal/core/services/update_product"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                 services.Service[logout.Input, logout.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	CreateProduct     services.Service[createproduct.Input, createproduct.Result]
	GetProduct        services.Service[getproduct.Input, getproduct.Result]
	ListUserProducts  services.Service[listuserproducts.Input, listuserproducts.Result]
	UpdateProduct     services.Service[updateproduct.Input, updateproduct.Result]
	DeleteProduct     services.Service[deleteproduct.Input, deleteproduct.Result]
	RecordProductSale services.Service[recordproductsale.Input, recordproductsale.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.UserSessionTokenGenerator,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.UserSessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			deps.Config.PasswordResetValidDurationHours,
			deps.Now,
		),
	)
	s.ResetPassword = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		resetpassword.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.Config.PasswordResetValidDurationHours,
			deps.Now,
		),
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)

	s.CreateProduct = auth.WithAuthentication(
		deps.SessionRepository,
		createproduct.New(
			deps.Logger,
			deps.ProductRepository,
			deps.ProductEventPublisher,
			deps.Now,
		),
	)
	s.GetProduct = auth.WithAuthentication(
		deps.SessionRepository,
		getproduct.New(deps.Logger, deps.ProductRepository),
	)
	s.ListUserProducts = auth.WithAuthentication(
		deps.SessionRepository,
		listuserproducts.New(deps.Logger, deps.ProductRepository),
	)
	s.UpdateProduct = auth.WithAuthentication(
		deps.SessionRepository,
		updateproduct.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.ProductEventPublisher,
			deps.Now,
		),
	)
	s.DeleteProduct = auth.WithAuthentication(
		deps.SessionRepository,
		deleteproduct.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.ProductEventPublisher,
		),
	)
	s.RecordProductSale = recordproductsale.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ProductEventPublisher,
		deps.Now,
	)

	return s
}
