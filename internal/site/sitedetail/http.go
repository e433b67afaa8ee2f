package sitedetail

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkpress/internal/platform/request"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public; the frontend renders about/terms/privacy from this.
	router.Get("/", handler.getSiteDetail)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Put("/", handler.updateSiteDetail)
		adminRoute.Post("/social-media", handler.addSocialLink)
		adminRoute.Delete("/social-media/{linkId}", handler.removeSocialLink)
	})
}

type siteDetailRequest struct {
	AboutTitle     string `json:"about_title"`
	AboutContent   string `json:"about_content"`
	TermsContent   string `json:"terms_content"`
	PrivacyContent string `json:"privacy_content"`
	FooterAbout    string `json:"footer_about"`
}

type socialLinkRequest struct {
	Platform string `json:"platform"`
	Icon     string `json:"icon"`
	Link     string `json:"link"`
}

func (handler *Handler) getSiteDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetSiteDetail(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

func (handler *Handler) updateSiteDetail(writer http.ResponseWriter, request *http.Request) {
	var body siteDetailRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	detail, err := handler.service.UpdateSiteDetail(request.Context(), Input{
		AboutTitle:     body.AboutTitle,
		AboutContent:   body.AboutContent,
		TermsContent:   body.TermsContent,
		PrivacyContent: body.PrivacyContent,
		FooterAbout:    body.FooterAbout,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

func (handler *Handler) addSocialLink(writer http.ResponseWriter, request *http.Request) {
	var body socialLinkRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	detail, err := handler.service.AddSocialLink(request.Context(), body.Platform, body.Icon, body.Link)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

func (handler *Handler) removeSocialLink(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.RemoveSocialLink(request.Context(), requestutil.ID(request, "linkId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}
