package main

import (
	"errors"
	"net/http"

	"github.com/dmorales/blogapi/internal/commentservice"
	"github.com/dmorales/blogapi/internal/postservice"
	"github.com/dmorales/blogapi/internal/userservice"
)

func (app *application) getAllPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.postService.GetAllPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, posts, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getPostHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "postId")

	post, err := app.postService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Post not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, post, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getPostsByUserHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "userId")

	posts, err := app.postService.GetPostsByUserID(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, posts, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var input postservice.CreatePostRequest

	err := app.parseJSON(r, &input)
	if err != nil {
		app.invalidJSONBodyResponse(w, r)
		return
	}

	result, err := app.postService.CreatePost(r.Context(), &input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, result, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updatePostHandler returns the updated post rather than the raw mutation
// summary.
func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "postId")

	var input updatePostRequest

	err := app.parseJSON(r, &input)
	if err != nil {
		app.invalidJSONBodyResponse(w, r)
		return
	}

	result, err := app.postService.UpdatePost(r.Context(), id, input.Title, input.Content)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if result.AffectedRows == 0 {
		app.notFoundResponse(w, r, "Post not found")
		return
	}

	post, err := app.postService.GetPostByID(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, post, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "postId")

	result, err := app.postService.DeletePost(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if result.AffectedRows == 0 {
		app.notFoundResponse(w, r, "Post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) getMostPopularCommentHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "postId")

	comment, err := app.commentService.GetMostPopularComment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commentservice.ErrRecordNotFound):
			app.notFoundResponse(w, r, "Comment not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, comment, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "postId")

	comments, err := app.commentService.GetCommentsByPostID(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, comments, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type loginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(r, &input)
	if err != nil {
		app.invalidJSONBodyResponse(w, r)
		return
	}

	user, err := app.userService.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notFoundResponse(w, r, "User not found")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, user, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type createUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var input createUserRequest

	err := app.parseJSON(r, &input)
	if err != nil {
		app.invalidJSONBodyResponse(w, r)
		return
	}

	result, err := app.userService.CreateUser(r.Context(), input.Nombre, input.Email, input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "User created successfully", "result": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
