package rbac

import (
	"net/http"
	"strings"

	"go-talento/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	repo    Repository
}

func NewHandler(service Service, repo Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	if req.EmployeeID == "" || req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "employee_id, resource y action son obligatorios", nil)
		return
	}

	allowed, err := h.service.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.repo.ListRoles()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	resp := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, h.toRoleResponse(role))
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRole(c *gin.Context) {
	role, err := h.repo.GetRoleByID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rol no encontrado", nil)
		return
	}

	response.Success(c, http.StatusOK, h.toRoleResponse(*role), nil)
}

func (h *Handler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
		return
	}

	if existing, _ := h.repo.GetRoleByName(req.Name); existing != nil {
		response.Error(c, http.StatusConflict, "CONFLICT", "Ya existe un rol con ese nombre", nil)
		return
	}

	role := &RoleRow{Name: req.Name, Description: req.Description}
	if err := h.repo.CreateRole(role); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	if len(req.Permissions) > 0 {
		if err := h.repo.UpdateRolePermissions(role.ID, req.Permissions); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			return
		}
	}

	response.Success(c, http.StatusCreated, h.toRoleResponse(*role), nil)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	role, err := h.repo.GetRoleByID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rol no encontrado", nil)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
		return
	}

	if req.Name != "" {
		role.Name = req.Name
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := h.repo.UpdateRole(role); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	if req.Permissions != nil {
		if err := h.repo.UpdateRolePermissions(role.ID, req.Permissions); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			return
		}
	}

	response.Success(c, http.StatusOK, h.toRoleResponse(*role), nil)
}

func (h *Handler) DeleteRole(c *gin.Context) {
	if err := h.repo.DeleteRole(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	perms, err := h.repo.ListPermissions()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	resp := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		resp = append(resp, PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		})
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
		return
	}

	if err := h.repo.AssignRole(req.EmployeeID, req.RoleID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assigned": true}, nil)
}

func (h *Handler) UnassignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", err.Error())
		return
	}

	if err := h.repo.UnassignRole(req.EmployeeID, req.RoleID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unassigned": true}, nil)
}

func (h *Handler) toRoleResponse(role RoleRow) RoleResponse {
	permNames := []string{}
	if perms, err := h.repo.GetPermissionsByRoleID(role.ID); err == nil {
		for _, p := range perms {
			permNames = append(permNames, p.Resource+":"+p.Action)
		}
	}
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: permNames,
	}
}
