// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants of the meal-log client.
//
// The API Msg* constants are the "error" strings the meal API writes into
// {"error": "..."} response bodies; the test API server reproduces them and
// the service layer recognises them. The user-facing Msg* constants are shown
// by the CLI and the failure alert.
package app

// Error messages returned by the meal API.
const (
	// MsgUserIDRequired is returned when a meal request lacks the userId
	// query parameter.
	MsgUserIDRequired = "userId required"

	// MsgInvalidData is returned when a created meal has no body or no
	// userId field.
	MsgInvalidData = "Invalid data"

	// MsgNoUpdateData is returned when an update request has an empty body.
	MsgNoUpdateData = "No update data provided"

	// MsgMealNotFound is returned by update and delete when no meal with the
	// given id belongs to the given identity.
	MsgMealNotFound = "Meal not found or unauthorized"

	// MsgDatabaseError is returned when the API cannot reach its database.
	MsgDatabaseError = "Database error"

	// MsgNoDataProvided is returned when a custom food request has no body.
	MsgNoDataProvided = "No data provided"

	// MsgMissingRequiredField prefixes the name of a required custom food
	// field that is absent.
	MsgMissingRequiredField = "Missing required field: "

	// MsgSaveCustomFoodFailed is returned when a custom food cannot be
	// stored.
	MsgSaveCustomFoodFailed = "Failed to save custom food"

	// MsgFoodIDRequired is returned when food details are requested without
	// the food_id query parameter.
	MsgFoodIDRequired = "food_id required"

	// MsgNoServingData is returned when food details cannot be resolved.
	MsgNoServingData = "No serving data found"
)

// User-facing messages.
const (
	// MsgSaveMealFailed is the blocking alert raised when a meal cannot be
	// saved for any reason.
	MsgSaveMealFailed = "Error saving meal. Check connection."

	// MsgUpdateMealFailed is printed when an update returns false.
	MsgUpdateMealFailed = "Error updating meal."

	// MsgDeleteMealFailed is printed when a delete returns false.
	MsgDeleteMealFailed = "Error deleting meal."

	// MsgNoMeals is printed for an empty listing.
	MsgNoMeals = "No meals logged."
)
