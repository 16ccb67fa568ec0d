package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// Any GET/POST/PUT/DELETE request that does not match a route below is an
	// unknown endpoint; verbs outside that set are rejected earlier by
	// checkMethod. MethodNotAllowed is disabled so a known path with the
	// wrong verb falls through to the same response.
	router.NotFound = http.HandlerFunc(app.endpointNotFoundResponse)
	router.HandleMethodNotAllowed = false

	router.HandlerFunc(http.MethodGet, "/health", app.healthCheckHandler)

	// post service
	router.HandlerFunc(http.MethodGet, "/posts", app.getAllPostsHandler)
	router.HandlerFunc(http.MethodPost, "/posts", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/posts/:postId", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/posts/:postId", app.updatePostHandler)
	router.HandlerFunc(http.MethodDelete, "/posts/:postId", app.deletePostHandler)
	router.HandlerFunc(http.MethodGet, "/users/:userId/posts", app.getPostsByUserHandler)

	// comment service
	router.HandlerFunc(http.MethodGet, "/posts/:postId/most-popular-comment", app.getMostPopularCommentHandler)
	router.HandlerFunc(http.MethodGet, "/posts/:postId/comments", app.getCommentsHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/users", app.createUserHandler)
	router.HandlerFunc(http.MethodPost, "/login", app.loginUserHandler)

	return app.recoverPanic(app.enableCORS(app.rateLimit(app.parseBody(app.logAccess(app.checkMethod(router))))))
}
