// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// marketplace server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Clients match
// on some of them, so the wording is part of the API.
package app

// Access gate and role policy. Sent as {"message": "..."}.
const (
	// MsgNoTokenProvided is returned with 401 when the request carries no
	// "Authorization" header.
	MsgNoTokenProvided = "Access denied. No token provided."

	// MsgInvalidTokenFormat is returned with 400 when the header is not
	// "Bearer <token>".
	MsgInvalidTokenFormat = "Invalid token format"

	// MsgInvalidToken is returned with 403 for every verification failure,
	// whatever the cause.
	MsgInvalidToken = "Invalid token"

	// MsgAccessDenied is returned with 403 when the caller's role does not
	// match the route.
	MsgAccessDenied = "Access denied"
)

// Business outcomes.
const (
	MsgEmailAlreadyInUse      = "Email already in use"
	MsgInvalidEmailOrPassword = "Invalid email or password"
	MsgProductNotFound        = "Product not found or unauthorized"
	MsgProductDeleted         = "Product deleted"
	MsgCartItemNotFound       = "Cart item not found"
	MsgCartProductNotFound    = "Product not found"
	MsgProductRemovedFromCart = "Product removed from cart"
	MsgNothingToUpdate        = "No fields to update"
	MsgInvalidJSON            = "Invalid JSON body"
	MsgInvalidProductID       = "Product ID must be an integer"
	MsgInvalidCartItemID      = "Cart item ID must be an integer"
	MsgPasswordTooLong        = "Password must be at most 72 bytes long"
	MsgInvalidRole            = "Role must be buyer or seller"
	MsgWelcome                = "Welcome to the API!"
	MsgNotFound               = "Not found"
	MsgInternalServerError    = "Internal server error"
)

// Operation failures. Sent with 500 as {"error": "..."}.
const (
	MsgSignupFailed         = "Signup failed"
	MsgLoginFailed          = "Login failed"
	MsgAddProductFailed     = "Failed to add product"
	MsgEditProductFailed    = "Failed to edit product"
	MsgDeleteProductFailed  = "Failed to delete product"
	MsgSearchFailed         = "Search failed"
	MsgListProductsFailed   = "Failed to list products"
	MsgAddToCartFailed      = "Failed to add to cart"
	MsgRemoveFromCartFailed = "Failed to remove from cart"
)
