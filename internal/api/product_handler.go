package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/models"
)

const (
	defaultListPage  = 1
	defaultListLimit = 10

	multipartMemory = 10 << 20
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := ListProductsParams{Page: defaultListPage, Limit: defaultListLimit}
	var parseErrors []apperrors.FieldError

	for _, n := range []struct {
		name string
		dest *int
	}{
		{"page", &params.Page},
		{"limit", &params.Limit},
	} {
		raw := r.URL.Query().Get(n.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			parseErrors = append(parseErrors, apperrors.FieldError{Field: n.name, Message: n.name + " must be an integer"})
			continue
		}
		*n.dest = v
	}

	if err := validationError(validate.Struct(params), parseErrors); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	result, err := h.productSvc.ListProducts(r.Context(), models.ListProductsParams{
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(result.Products))
	for i, p := range result.Products {
		responses[i] = convertToProductResponse(p)
	}

	Success(w, NewListResponse(responses, result.Pagination))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), productID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// CreateProduct accepts either a JSON body or a multipart form with an
// optional "image" file.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var (
		req   CreateProductRequest
		image *models.ImageUpload
		err   error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		req, image, err = decodeProductForm(r)
	} else {
		err = decodeProductJSON(w, r, &req)
	}
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			h.resp.ValidationFailed(w, r, validationErr)
			return
		}
		h.resp.BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
		"has_image":    image != nil,
	})

	serviceReq := models.CreateProductRequest{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         *req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
	}

	product, err := h.productSvc.CreateProduct(r.Context(), &serviceReq, image)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	Created(w, CreateProductResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    convertToProductResponse(product),
	})
}

func decodeProductJSON(w http.ResponseWriter, r *http.Request, req *CreateProductRequest) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return err
	}
	if req.Price != nil {
		if msg := priceRangeError(*req.Price); msg != "" {
			return apperrors.NewValidationError("price", "price "+msg)
		}
	}
	return nil
}

func decodeProductForm(r *http.Request) (CreateProductRequest, *models.ImageUpload, error) {
	var req CreateProductRequest
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return req, nil, err
	}

	var fields []apperrors.FieldError

	req.Name = r.FormValue("name")
	req.Description = ptrOrNil(strings.TrimSpace(r.FormValue("description")))
	req.Category = ptrOrNil(strings.TrimSpace(r.FormValue("category")))

	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, fieldErr := parsePrice("price", raw)
		if fieldErr != nil {
			fields = append(fields, *fieldErr)
		} else {
			req.Price = price
		}
	}
	if raw := strings.TrimSpace(r.FormValue("stock_quantity")); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, apperrors.FieldError{Field: "stock_quantity", Message: "stock_quantity must be an integer"})
		} else {
			req.StockQuantity = stock
		}
	}
	if len(fields) > 0 {
		return req, nil, apperrors.NewFieldValidationError("validation failed", fields)
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}
	if err != nil {
		return req, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, nil, err
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return req, nil, apperrors.NewValidationError("image", "image must be an image file")
	}

	return req, &models.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
