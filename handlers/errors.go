package handlers

import (
	"errors"
	"net/http"

	"disruptive/schema"
	"disruptive/services/auth"
	"disruptive/services/category"
	"disruptive/services/content"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates typed service errors into the HTTP error
// envelope. Anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr   *schema.ValidationError
		catNotFound     category.CategoryNotFoundError
		catDuplicate    category.DuplicateCategoryError
		catInUse        category.CategoryInUseError
		contentNotFound content.ContentNotFoundError
		notLicensed     content.FieldNotLicensedError
		badCredentials  auth.InvalidCredentialsError
		dupEmail        auth.DuplicateEmailError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload failed validation", validationErr.Reasons)
	case errors.As(err, &notLicensed):
		reasons := make([]schema.FieldReason, 0, len(notLicensed.Fields))
		for _, f := range notLicensed.Fields {
			reasons = append(reasons, schema.FieldReason{Field: f, Reason: "not permitted by category " + notLicensed.Category})
		}
		utils.JSONError(c, http.StatusBadRequest, utils.CodeFieldNotLicensed, notLicensed.Error(), reasons)
	case errors.As(err, &catNotFound):
		utils.JSONError(c, http.StatusNotFound, utils.CodeCategoryNotFound, catNotFound.Error(), nil)
	case errors.As(err, &catInUse):
		utils.JSONError(c, http.StatusConflict, utils.CodeCategoryInUse, catInUse.Error(), nil)
	case errors.As(err, &catDuplicate):
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, catDuplicate.Error(), []schema.FieldReason{
			{Field: "name", Reason: "already in use"},
		})
	case errors.As(err, &contentNotFound):
		utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, contentNotFound.Error(), nil)
	case errors.As(err, &badCredentials):
		utils.JSONError(c, http.StatusUnauthorized, utils.CodeInvalidToken, badCredentials.Error(), nil)
	case errors.As(err, &dupEmail):
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, dupEmail.Error(), []schema.FieldReason{
			{Field: "email", Reason: "already registered"},
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeInternal, "Internal server error", nil)
	}
}
