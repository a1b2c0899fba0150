package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/services"
)

// --- request payloads: every POST body is decoded into a typed struct and
// validated before any service call.

type addProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

func (r *addProductRequest) validate() string {
	switch {
	case r.Name == "":
		return "name is required"
	case r.Image == "":
		return "image is required"
	case r.Category == "":
		return "category is required"
	case r.NewPrice < 0 || r.OldPrice < 0:
		return "prices must not be negative"
	}
	return ""
}

type removeProductRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *signupRequest) validate() string {
	switch {
	case r.Username == "":
		return "username is required"
	case r.Email == "":
		return "email is required"
	case r.Password == "":
		return "password is required"
	}
	return ""
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type cartItemRequest struct {
	ItemID *int `json:"itemId"`
}

type uploadRequest struct {
	Filename string `json:"filename"`
}

// --- response helpers

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "errors": msg})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// --- handlers

func (s *HTTPServer) root(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "API is running")
}

func (s *HTTPServer) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	product, err := s.catalog.Add(r.Context(), services.ProductSpec{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info(r.Context(), "Product added", "id", product.ID, "name", product.Name)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": product.Name})
}

func (s *HTTPServer) removeProduct(w http.ResponseWriter, r *http.Request) {
	var req removeProductRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		writeFailure(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := s.catalog.Remove(r.Context(), req.ID); err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// name is echoed back from the request, matching the historical API
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": req.Name})
}

func (s *HTTPServer) allProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *HTTPServer) newCollections(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.Recent(r.Context(), 8)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *HTTPServer) popularInWomen(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ByCategory(r.Context(), "women", 4)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	_, token, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			writeFailure(w, http.StatusBadRequest, "Existing User With Same Email Id")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info(r.Context(), "User registered", "email", req.Email)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		// The two failure modes answer with distinct messages (and even
		// distinct JSON keys) because the frontend matches on them. This is
		// a user-enumeration leak kept for wire compatibility.
		case errors.Is(err, common.ErrUnknownEmail):
			writeFailure(w, http.StatusBadRequest, "Invalid Email Id Please Register")
		case errors.Is(err, common.ErrWrongPassword):
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid Password"})
		default:
			s.logger.Error(r.Context(), err.Error())
			writeFailure(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *HTTPServer) upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": 0, "message": "No file uploaded"})
		return
	}

	target, err := s.images.NewUploadTarget(r.Context(), req.Filename)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    1,
		"image_url":  target.ImageURL,
		"upload_url": target.UploadURL,
		"key":        target.Key,
	})
}

// image serves stored product images by redirecting to a presigned GET on
// the object store, so image bytes never stream through this process.
func (s *HTTPServer) image(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		writeFailure(w, http.StatusBadRequest, "missing image key")
		return
	}

	url, err := s.images.ResolveURL(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (s *HTTPServer) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ItemID == nil {
		writeFailure(w, http.StatusBadRequest, "itemId is required")
		return
	}

	userID := UserIDFromContext(r.Context())

	if err := s.carts.AddItem(r.Context(), userID, *req.ItemID); err != nil {
		if errors.Is(err, common.ErrInvalidSlot) {
			writeFailure(w, http.StatusBadRequest, "invalid itemId")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeText(w, http.StatusOK, "Added")
}

func (s *HTTPServer) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ItemID == nil {
		writeFailure(w, http.StatusBadRequest, "itemId is required")
		return
	}

	userID := UserIDFromContext(r.Context())

	if err := s.carts.RemoveItem(r.Context(), userID, *req.ItemID); err != nil {
		if errors.Is(err, common.ErrInvalidSlot) {
			writeFailure(w, http.StatusBadRequest, "invalid itemId")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeText(w, http.StatusOK, "Removed")
}

func (s *HTTPServer) getCart(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	vector, err := s.carts.Get(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, vector)
}
