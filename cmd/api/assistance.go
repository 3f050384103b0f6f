package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"refuge-connect/internal/translation"
	"refuge-connect/internal/types"
	"refuge-connect/internal/web"
)

const sessionCookie = "rc_session"

// TranslateRequest is the body of a translation submission
type TranslateRequest struct {
	Text     string `json:"text" form:"text" example:"hello"`
	Language string `json:"language" form:"language" binding:"required" example:"French"`
}

// HelperResponse is the JSON form of a helper
type HelperResponse struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"Maria Schmidt"`
	Language  string `json:"language" example:"German"`
	Expertise string `json:"expertise" example:"Legal Advice"`
}

func newHelperResponse(h types.Helper) HelperResponse {
	return HelperResponse{
		ID:        h.ID,
		Name:      h.Name,
		Language:  h.Language,
		Expertise: h.Expertise,
	}
}

// session returns the caller's translation session and refreshes its cookie
func (app *App) session(c *gin.Context) *translation.Session {
	id, _ := c.Cookie(sessionCookie)
	id, sess := app.sessions.Get(id)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(app.cfg.App.SessionIdleTimeout.Seconds()), "/", "", false, true)

	return sess
}

func (app *App) handleAssistancePage(c *gin.Context) {
	sess := app.session(c)
	c.HTML(http.StatusOK, "assistance.html", web.NewAssistancePage(sess.State(), app.helperDirectory.All()))
}

// handleTranslateForm accepts the assistance page form and redirects back to it.
// A submission while a translation is pending is ignored.
func (app *App) handleTranslateForm(c *gin.Context) {
	sess := app.session(c)

	var req TranslateRequest
	if err := c.ShouldBind(&req); err != nil {
		app.renderAssistanceError(c, sess, "Please choose a language.")
		return
	}

	lang, err := translation.ParseLanguage(req.Language)
	if err != nil {
		app.renderAssistanceError(c, sess, "Unsupported language: "+req.Language)
		return
	}

	if _, err := sess.Start(c.Request.Context(), req.Text, lang); err != nil {
		// the button stays disabled while a call is pending, so this is a duplicate post
		app.logger.Debug("ignored translation submission", "error", err)
	}

	c.Redirect(http.StatusSeeOther, "/assistance")
}

func (app *App) renderAssistanceError(c *gin.Context, sess *translation.Session, msg string) {
	page := web.NewAssistancePage(sess.State(), app.helperDirectory.All())
	page.Error = msg
	c.HTML(http.StatusBadRequest, "assistance.html", page)
}

// handleListHelpers godoc
// @Summary List helpers
// @Description List every local helper in directory order
// @Tags assistance
// @Produce json
// @Success 200 {array} HelperResponse
// @Router /api/helpers [get]
func (app *App) handleListHelpers(c *gin.Context) {
	helpers := app.helperDirectory.All()

	resp := make([]HelperResponse, 0, len(helpers))
	for _, h := range helpers {
		resp = append(resp, newHelperResponse(h))
	}

	c.JSON(http.StatusOK, resp)
}

// handleListLanguages godoc
// @Summary List translation languages
// @Description List the supported translation target languages
// @Tags assistance
// @Produce json
// @Success 200 {array} string
// @Router /api/languages [get]
func (app *App) handleListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, translation.Languages())
}

// handleGetTranslation godoc
// @Summary Get translation state
// @Description Return the translation state of the caller's session
// @Tags assistance
// @Produce json
// @Success 200 {object} translation.State
// @Router /api/translations [get]
func (app *App) handleGetTranslation(c *gin.Context) {
	c.JSON(http.StatusOK, app.session(c).State())
}

// handleStartTranslation godoc
// @Summary Start translation
// @Description Start a translation for the caller's session. Only one translation may be in flight per session.
// @Tags assistance
// @Accept json
// @Produce json
// @Param request body TranslateRequest true "Text and target language"
// @Success 202 {object} translation.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/translations [post]
func (app *App) handleStartTranslation(c *gin.Context) {
	sess := app.session(c)

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lang, err := translation.ParseLanguage(req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := sess.Start(c.Request.Context(), req.Text, lang); err != nil {
		if errors.Is(err, translation.ErrInFlight) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}

		app.logger.Error("failed to start translation", "language", lang, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start translation"})
		return
	}

	c.JSON(http.StatusAccepted, sess.State())
}
