package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"petpos/internal/catalog"
	"petpos/internal/validate"
)

// CatalogHandler proxies catalog reads and writes through to the remote API.
type CatalogHandler struct {
	API *catalog.Client
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.API.ListProducts(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetProduct(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

// multipartUpload extracts the form fields and the optional image part of a
// product/pet upload. The caller closes the returned file when it is non-nil;
// disk-backed parts hold a descriptor until then.
func multipartUpload(c *fiber.Ctx) (map[string]string, io.ReadCloser, string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, "", err
	}
	fields := make(map[string]string, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	if files := form.File["image"]; len(files) > 0 {
		f, err := files[0].Open()
		if err != nil {
			return nil, nil, "", err
		}
		return fields, f, files[0].Filename, nil
	}
	return fields, nil, "", nil
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	fields, image, name, err := multipartUpload(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "bad multipart form")
	}
	if image != nil {
		defer image.Close()
	}
	out, err := h.API.CreateProduct(c.Context(), fields, image, name)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	fields, image, name, err := multipartUpload(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "bad multipart form")
	}
	if image != nil {
		defer image.Close()
	}
	out, err := h.API.UpdateProduct(c.Context(), id, fields, image, name)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	if err := h.API.DeleteProduct(c.Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetService(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.API.ListServices(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var svc catalog.Service
	if err := c.BodyParser(&svc); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	out, err := h.API.CreateService(c.Context(), svc)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	var svc catalog.Service
	if err := c.BodyParser(&svc); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	out, err := h.API.UpdateService(c.Context(), id, svc)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	if err := h.API.DeleteService(c.Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CatalogHandler) GetPet(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetPet(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListPets(c *fiber.Ctx) error {
	out, err := h.API.ListPets(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreatePet(c *fiber.Ctx) error {
	fields, image, name, err := multipartUpload(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "bad multipart form")
	}
	if image != nil {
		defer image.Close()
	}
	out, err := h.API.CreatePet(c.Context(), fields, image, name)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdatePet(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	fields, image, name, err := multipartUpload(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "bad multipart form")
	}
	if image != nil {
		defer image.Close()
	}
	out, err := h.API.UpdatePet(c.Context(), id, fields, image, name)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeletePet(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	if err := h.API.DeletePet(c.Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CatalogHandler) GetCustomer(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	out, err := h.API.GetCustomer(c.Context(), id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	out, err := h.API.ListCustomers(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var cust catalog.Customer
	if err := c.BodyParser(&cust); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	if cust.Name == "" {
		return fail(c, fiber.StatusBadRequest, "customer name is required")
	}
	if cust.Email != "" {
		if _, ok := validate.Email(cust.Email); !ok {
			return fail(c, fiber.StatusBadRequest, "invalid email")
		}
	}
	out, err := h.API.CreateCustomer(c.Context(), cust)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	var cust catalog.Customer
	if err := c.BodyParser(&cust); err != nil {
		return fail(c, fiber.StatusBadRequest, "bad request body")
	}
	out, err := h.API.UpdateCustomer(c.Context(), id, cust)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid id")
	}
	if err := h.API.DeleteCustomer(c.Context(), id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
