package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/items/:itemUid", h.showItemHandler)
	router.HandlerFunc(http.MethodGet, "/v1/items/:itemUid/reviews", h.listReviewsHandler)
	router.HandlerFunc(http.MethodPut, "/v1/items/:itemUid/reviews", h.requireAuthenticatedUser(h.submitReviewHandler))

	router.HandlerFunc(http.MethodDelete, "/v1/reviews/:reviewId", h.requireAuthenticatedUser(h.deleteReviewHandler))
	router.HandlerFunc(http.MethodPost, "/v1/reviews/:reviewId/vote", h.requireAuthenticatedUser(h.castVoteHandler))

	router.HandlerFunc(http.MethodGet, "/v1/users/votes", h.requireAuthenticatedUser(h.listUserVotesHandler))

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(h.authenticate(router)))))
}
