package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/service"
	"github.com/employeedir/employeedir/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

const msgNotFound = "Employee not found"

// RegisterEmployeeRoutes mounts the employee resource on r.
func RegisterEmployeeRoutes(r gin.IRouter, svc service.Service) {
	h := &employeeHandler{svc: svc}
	r.GET("/employees", h.list)
	r.GET("/employees/:id", h.get)
	r.POST("/employees", h.create)
	r.PUT("/employees/:id", h.update)
	r.DELETE("/employees/:id", h.delete)
}

type employeeHandler struct {
	svc service.Service
}

// pathID parses :id. A non-numeric id cannot name any employee, so callers
// answer 404 rather than 400.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return 0, false
	}
	return id, true
}

func bindDraft(c *gin.Context) (employee.Draft, bool) {
	var d employee.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return employee.Draft{}, false
	}
	return d, true
}

func fail(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}
	logger.Errorf("%s %s: %s failed: %v", c.Request.Method, c.Request.URL.Path, op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func (h *employeeHandler) list(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *employeeHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *employeeHandler) create(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	e, err := h.svc.Create(c.Request.Context(), d)
	if err != nil {
		fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *employeeHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, d)
	if err != nil {
		fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *employeeHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, e)
}
