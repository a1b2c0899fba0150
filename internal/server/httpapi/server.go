// Package httpapi exposes the storefront over HTTP+JSON. Routes, payload
// field names and error strings follow the contract the frontend already
// speaks.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/services"
)

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	catalog *services.CatalogService
	carts   *services.CartService
	images  *services.ImageService
}

func NewHTTPServer(address string, l logging.Logger, us *services.UserService,
	cs *services.CatalogService, crt *services.CartService, is *services.ImageService) *HTTPServer {
	return &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		catalog: cs,
		carts:   crt,
		images:  is,
	}
}

// Router builds the public route table. Catalog and account routes are
// open; cart routes sit behind the auth-token gate.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.root)

	r.Post("/addproduct", s.addProduct)
	r.Post("/removeproduct", s.removeProduct)
	r.Get("/allproducts", s.allProducts)
	r.Get("/newcollections", s.newCollections)
	r.Get("/popularinwomen", s.popularInWomen)

	r.Post("/signup", s.signup)
	r.Post("/login", s.login)

	r.Post("/upload", s.upload)
	r.Get("/images/*", s.image)

	r.Group(func(r chi.Router) {
		r.Use(s.authTokenMiddleware)
		r.Post("/addtocart", s.addToCart)
		r.Post("/removefromCart", s.removeFromCart)
		r.Post("/getcart", s.getCart)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
