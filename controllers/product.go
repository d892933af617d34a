package controllers

import (
	"net/http"
	"strconv"

	apperrors "go-storefront/errors"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController handles catalog reads and admin catalog writes.
type ProductController struct {
	Products repository.ProductRepository
	Validate *validator.Validate
}

func NewProductController(products repository.ProductRepository) *ProductController {
	return &ProductController{
		Products: products,
		Validate: validator.New(),
	}
}

// GetProducts lists active products with optional category, featured
// and search filters.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if r.URL.Query().Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	products, err := pc.Products.FindAll(ctx, filter)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to fetch products").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count":    len(products),
		"products": products,
	})
}

func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	product, err := pc.Products.FindByID(ctx, id)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Product not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

// CreateProduct adds a catalog entry. The image comes either as a
// multipart file stored under /uploads/products/ or as a URL in the
// body; one of the two is required.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest

	if isMultipart(r) {
		path, err := utils.SaveUploadedFile(r, "image", "products", 5<<20)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		if path == "" {
			path = r.FormValue("image")
		}

		req = models.CreateProductRequest{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Image:       path,
			Category:    r.FormValue("category"),
			Featured:    parseFormBool(r.FormValue("featured")),
		}
		req.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
		req.Stock, _ = strconv.Atoi(r.FormValue("stock"))

		if err := pc.Validate.Struct(&req); err != nil {
			utils.WriteError(w, apperrors.InvalidArgument("Title, description and a non-negative price are required"))
			return
		}
	} else if !decodeAndValidate(w, r, &req, pc.Validate) {
		return
	}

	if req.Image == "" {
		utils.WriteError(w, apperrors.InvalidArgument("Product image is required"))
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	product, err := pc.Products.Create(ctx, &models.Product{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    category,
		IsActive:    true,
		Featured:    req.Featured,
	})
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to create product").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product": product,
	})
}

// UpdateProduct patches the fields present in the request, including
// the isActive soft-hide flag.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	patch := bson.M{}

	if isMultipart(r) {
		path, err := utils.SaveUploadedFile(r, "image", "products", 5<<20)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		if path != "" {
			patch["image"] = path
		} else if v := r.FormValue("image"); v != "" {
			patch["image"] = v
		}

		for _, field := range []string{"title", "description", "category"} {
			if v := r.FormValue(field); v != "" {
				patch[field] = v
			}
		}
		if v := r.FormValue("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				utils.WriteError(w, apperrors.InvalidArgument("Price must be a non-negative number"))
				return
			}
			patch["price"] = price
		}
		if v := r.FormValue("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				utils.WriteError(w, apperrors.InvalidArgument("Stock must be a non-negative number"))
				return
			}
			patch["stock"] = stock
		}
		if v := r.FormValue("isActive"); v != "" {
			patch["isActive"] = parseFormBool(v)
		}
		if v := r.FormValue("featured"); v != "" {
			patch["featured"] = parseFormBool(v)
		}
	} else {
		var req models.UpdateProductRequest
		if !decodeAndValidate(w, r, &req, pc.Validate) {
			return
		}

		if req.Title != nil {
			patch["title"] = *req.Title
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Image != nil {
			patch["image"] = *req.Image
		}
		if req.Price != nil {
			patch["price"] = *req.Price
		}
		if req.Stock != nil {
			patch["stock"] = *req.Stock
		}
		if req.Category != nil {
			patch["category"] = *req.Category
		}
		if req.IsActive != nil {
			patch["isActive"] = *req.IsActive
		}
		if req.Featured != nil {
			patch["featured"] = *req.Featured
		}
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	product, err := pc.Products.Update(ctx, id, patch)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Product not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid product ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if err := pc.Products.Delete(ctx, id); err != nil {
		utils.WriteError(w, apperrors.NotFound("Product not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

// GetProductsForAdmin lists every product, including soft-hidden ones.
func (pc *ProductController) GetProductsForAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	products, err := pc.Products.FindAllForAdmin(ctx)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to fetch products").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count":    len(products),
		"products": products,
	})
}
