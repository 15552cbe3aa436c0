// Package docs registers the OpenAPI description served under /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/auth/google": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with Google",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/user/update/{userId}": {
            "put": {
                "tags": ["users"],
                "summary": "Update a user profile",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/user/delete/{userId}": {
            "delete": {
                "tags": ["users"],
                "summary": "Delete own account",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/user/signout": {
            "post": {
                "tags": ["users"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/user/getusers": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/user/deleteuser/{userId}": {
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/user/{userId}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/post/create": {
            "post": {
                "tags": ["posts"],
                "summary": "Create a post",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/post/getposts": {
            "get": {
                "tags": ["posts"],
                "summary": "List posts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/post/deletepost/{postId}/{userId}": {
            "delete": {
                "tags": ["posts"],
                "summary": "Delete a post",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/post/updatepost/{postId}/{userId}": {
            "put": {
                "tags": ["posts"],
                "summary": "Update a post",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/post/bookmarkpost/{postId}": {
            "put": {
                "tags": ["posts"],
                "summary": "Toggle a bookmark",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/post/mybookmarks/{userId}": {
            "get": {
                "tags": ["posts"],
                "summary": "List own bookmarked posts",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/comment/create": {
            "post": {
                "tags": ["comments"],
                "summary": "Create a comment",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/comment/getPostComments/{postId}": {
            "get": {
                "tags": ["comments"],
                "summary": "List a post's comments",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/comment/likecomment/{commentId}": {
            "put": {
                "tags": ["comments"],
                "summary": "Toggle a like",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/comment/editcomment/{commentId}": {
            "put": {
                "tags": ["comments"],
                "summary": "Edit a comment",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/comment/deletecomment/{commentId}": {
            "delete": {
                "tags": ["comments"],
                "summary": "Delete a comment",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "REST API for the blogging platform: accounts, posts, comments, likes and bookmarks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
