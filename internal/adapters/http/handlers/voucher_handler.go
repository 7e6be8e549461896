package handlers

import (
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/http/middleware"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/services"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VoucherHandler handles voucher endpoints
type VoucherHandler struct {
	voucherService *services.VoucherService
	storageService *services.StorageService
	voucherDir     string
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *services.VoucherService, storageService *services.StorageService, voucherDir string) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
		storageService: storageService,
		voucherDir:     voucherDir,
	}
}

// UseRequest represents a redemption request body
type UseRequest struct {
	Amount int    `json:"amount"`
	Place  string `json:"place"`
}

// Save registers a new voucher for the authenticated member
// @Summary Register voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SaveInput true "Voucher data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vouchers [post]
func (h *VoucherHandler) Save(c *fiber.Ctx) error {
	username := middleware.Username(c)

	var req services.SaveInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Balance <= 0 {
		return response.BadRequest(c, "Balance must be positive")
	}

	id, err := h.voucherService.Save(c.Context(), username, &req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Created(c, "Voucher registered successfully", fiber.Map{"id": id})
}

// UploadImage issues a presigned PUT URL for a voucher image
// @Summary Voucher image upload URL
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /vouchers/image [post]
func (h *VoucherHandler) UploadImage(c *fiber.Ctx) error {
	url, key, err := h.storageService.PresignedPutURL(c.Context(), h.voucherDir)
	if err != nil {
		return response.InternalServerError(c, "Failed to create upload URL")
	}

	return response.Success(c, "", fiber.Map{
		"upload_url": url,
		"key":        key,
	})
}

// Read returns a voucher's details
// @Summary Voucher details
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Param voucherId path int true "Voucher ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vouchers/{voucherId} [get]
func (h *VoucherHandler) Read(c *fiber.Ctx) error {
	username := middleware.Username(c)

	voucherID, err := c.ParamsInt("voucherId")
	if err != nil || voucherID <= 0 {
		return response.BadRequest(c, "Invalid voucher id")
	}

	result, err := h.voucherService.Read(c.Context(), uint(voucherID), username)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", result)
}

// List returns the ids of all vouchers owned by the authenticated member
// @Summary My vouchers
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	username := middleware.Username(c)

	ids, err := h.voucherService.List(c.Context(), username)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", ids)
}

// Update applies a partial update to a voucher
// @Summary Update voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param voucherId path int true "Voucher ID"
// @Param body body services.UpdateInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vouchers/{voucherId} [patch]
func (h *VoucherHandler) Update(c *fiber.Ctx) error {
	voucherID, err := c.ParamsInt("voucherId")
	if err != nil || voucherID <= 0 {
		return response.BadRequest(c, "Invalid voucher id")
	}

	var req services.UpdateInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	id, err := h.voucherService.Update(c.Context(), uint(voucherID), &req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "Voucher updated successfully", fiber.Map{"id": id})
}

// History returns a voucher's usage records and remaining balance
// @Summary Voucher usage history
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Param voucherId path int true "Voucher ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vouchers/{voucherId}/usage [get]
func (h *VoucherHandler) History(c *fiber.Ctx) error {
	username := middleware.Username(c)

	voucherID, err := c.ParamsInt("voucherId")
	if err != nil || voucherID <= 0 {
		return response.BadRequest(c, "Invalid voucher id")
	}

	result, err := h.voucherService.History(c.Context(), uint(voucherID), username)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", result)
}

// Use redeems an amount against a voucher
// @Summary Redeem voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param voucherId path int true "Voucher ID"
// @Param body body UseRequest true "Redemption data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vouchers/{voucherId}/usage [post]
func (h *VoucherHandler) Use(c *fiber.Ctx) error {
	username := middleware.Username(c)

	voucherID, err := c.ParamsInt("voucherId")
	if err != nil || voucherID <= 0 {
		return response.BadRequest(c, "Invalid voucher id")
	}

	var req UseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Amount < 0 {
		return response.BadRequest(c, "Amount must not be negative")
	}

	result, err := h.voucherService.Use(c.Context(), username, uint(voucherID), req.Amount, req.Place)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "Voucher redeemed successfully", result)
}
