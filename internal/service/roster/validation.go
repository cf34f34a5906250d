package roster

import (
	rosterSvc "castindex/internal/domain/services/roster"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validateOrganizeRequest validates the configuration record once, at the
// boundary between the dialog and the reconciler.
func validateOrganizeRequest(req *rosterSvc.OrganizeRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.Kind, validation.Required),
		validation.Field(&req.RootFolderID, is.UUID),
	)
}
