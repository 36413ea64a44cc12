package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpovs/accountd/internal/accounts"
	"github.com/mkarpovs/accountd/internal/auth"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// writeError maps service errors onto HTTP statuses. Each failure kind has
// its own status; store detail is logged where it happens and only a generic
// message leaves the process.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, auth.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, accounts.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, accounts.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, accounts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindAdminJSON binds the body of an admin-gated request. Authorization
// outranks payload validity in the failure ordering, so when the body is
// unusable the role check still decides between 401/403 and 400.
func (s *Server) bindAdminJSON(c *gin.Context, claims *auth.Claims, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if authErr := auth.Authorize(claims, string(accounts.RoleAdmin)); authErr != nil {
			s.writeError(c, authErr)
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	err := s.service.Register(ctx, req.Name, req.Login, req.Password, accounts.Role(req.Role))
	if err != nil {
		if errors.Is(err, accounts.ErrAlreadyExists) || errors.Is(err, accounts.ErrInternal) {
			// never detail why registration failed
			s.logger.Warn(ctx, "registration failed", "login", req.Login)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
			return
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.service.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleMe(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		s.writeError(c, auth.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"login":      claims.Login,
		"role":       claims.Role,
		"expires_at": claims.ExpiresAt,
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	claims := claimsFrom(c)

	var req registerRequest
	if !s.bindAdminJSON(c, claims, &req) {
		return
	}

	ctx := c.Request.Context()
	err := s.service.Create(ctx, claims, req.Name, req.Login, req.Password, accounts.Role(req.Role))
	if err != nil {
		if errors.Is(err, accounts.ErrAlreadyExists) {
			s.logger.Warn(ctx, "account creation failed", "login", req.Login)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

func (s *Server) handleList(c *gin.Context) {
	result, err := s.service.List(c.Request.Context(), claimsFrom(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleUpdate(c *gin.Context) {
	claims := claimsFrom(c)

	var req updateRequest
	if !s.bindAdminJSON(c, claims, &req) {
		return
	}

	err := s.service.Update(c.Request.Context(), claims, req.ID, req.Name, req.Login, accounts.Role(req.Role))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func (s *Server) handleDelete(c *gin.Context) {
	err := s.service.Delete(c.Request.Context(), claimsFrom(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
