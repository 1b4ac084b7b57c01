package handlers

import (
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	Invoices *services.InvoiceService
	Codec    *wire.InvoiceCodec
}

// Invoices are private: unlike products and feed items, reads are also
// restricted to the owner.
var invoicePolicies = []Policy{IsAuthenticated, OwnerOnly}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.Invoices.ListByOwner(caller(c).ID)
	if err != nil {
		return fail(c, "invoice.list", err)
	}
	out := make([]map[string]any, 0, len(invoices))
	for _, inv := range invoices {
		_, items, err := h.Invoices.Get(inv.ID)
		if err != nil {
			return fail(c, "invoice.list", err)
		}
		out = append(out, h.Codec.ToWire(inv, items))
	}
	return c.JSON(out)
}

func (h *InvoiceHandler) Retrieve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	inv, items, err := h.Invoices.Get(id)
	if err != nil {
		return fail(c, "invoice.retrieve", err)
	}
	if err := permit(caller(c), inv.OwnerID, ActionRetrieve, invoicePolicies); err != nil {
		return fail(c, "invoice.retrieve", err)
	}
	return c.JSON(h.Codec.ToWire(inv, items))
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	body, err := decodeBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	draft, verr := h.Codec.FromWire(body, false)
	if verr != nil {
		return fail(c, "invoice.create", verr)
	}
	inv, items, err := h.Invoices.Create(caller(c).ID, draft)
	if err != nil {
		return fail(c, "invoice.create", err)
	}
	applog.Audit(c, "invoice.create", map[string]any{"id": inv.ID, "owner": inv.OwnerID})
	return c.Status(fiber.StatusCreated).JSON(h.Codec.ToWire(inv, items))
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return detail(c, fiber.StatusNotFound, "not found")
	}
	inv, _, err := h.Invoices.Get(id)
	if err != nil {
		return fail(c, "invoice.delete", err)
	}
	if err := permit(caller(c), inv.OwnerID, ActionDelete, invoicePolicies); err != nil {
		return fail(c, "invoice.delete", err)
	}
	if err := h.Invoices.Delete(id); err != nil {
		return fail(c, "invoice.delete", err)
	}
	applog.Audit(c, "invoice.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
