package handlers

import (
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products        *services.ProductService
	Codec           *wire.ProductCodec
	OwnerScopedList bool
}

// productPolicies gate object-scoped actions: reads are open to any
// authenticated caller, mutations to the owner.
var productPolicies = []Policy{IsAuthenticated, OwnerOrReadOnly}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	var (
		items []domain.Product
		err   error
	)
	if h.OwnerScopedList {
		items, err = h.Products.ListByOwner(caller(c).ID)
	} else {
		items, err = h.Products.List()
	}
	if err != nil {
		return fail(c, "product.list", err)
	}
	out := make([]map[string]any, 0, len(items))
	for _, p := range items {
		out = append(out, h.Codec.ToWire(p))
	}
	return c.JSON(out)
}

func (h *ProductHandler) Retrieve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return fail(c, "product.retrieve", err)
	}
	if err := permit(caller(c), p.OwnerID, ActionRetrieve, productPolicies); err != nil {
		return fail(c, "product.retrieve", err)
	}
	return c.JSON(h.Codec.ToWire(p))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, false)
	if verr != nil {
		return fail(c, "product.create", verr)
	}
	p, err := h.Products.Create(caller(c).ID, draft)
	if err != nil {
		return fail(c, "product.create", err)
	}
	applog.Audit(c, "product.create", map[string]any{"id": p.ID, "owner": p.OwnerID})
	return c.Status(fiber.StatusCreated).JSON(h.Codec.ToWire(p))
}

// Update handles PUT (full) and PATCH (partial) on one code path.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return fail(c, "product.update", err)
	}
	if err := permit(caller(c), p.OwnerID, ActionUpdate, productPolicies); err != nil {
		return fail(c, "product.update", err)
	}
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, c.Method() == fiber.MethodPatch)
	if verr != nil {
		return fail(c, "product.update", verr)
	}
	p, err = h.Products.Update(p, draft)
	if err != nil {
		return fail(c, "product.update", err)
	}
	applog.Audit(c, "product.update", map[string]any{"id": p.ID})
	return c.JSON(h.Codec.ToWire(p))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return fail(c, "product.delete", err)
	}
	if err := permit(caller(c), p.OwnerID, ActionDelete, productPolicies); err != nil {
		return fail(c, "product.delete", err)
	}
	if err := h.Products.Delete(id); err != nil {
		return fail(c, "product.delete", err)
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
