package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
)

// CoachHandler exchanges the coach credential for an access token. The
// credential is a single configured bcrypt hash: there is no user table and
// exactly one privileged principal.
type CoachHandler struct {
	passwordHash string
	hasher       auth.PasswordHasher
	jwtManager   *auth.JWTManager
}

func NewCoachHandler(passwordHash string, hasher auth.PasswordHasher, jwtManager *auth.JWTManager) *CoachHandler {
	return &CoachHandler{
		passwordHash: passwordHash,
		hasher:       hasher,
		jwtManager:   jwtManager,
	}
}

//
// POST /v1/coach/login
//

func (h *CoachHandler) Login(c *gin.Context) {
	var req CoachLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.hasher.Compare(h.passwordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := h.jwtManager.GenerateCoachToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, CoachLoginResponse{AccessToken: token})
}
