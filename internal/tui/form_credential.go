package tui

import (
	"github.com/MKhiriev/trustme/models"
)

const (
	fieldWebsite = iota
	fieldUsername
	fieldPassword
	fieldNotes
)

// credentialForm adds a credential, or edits original when editing is set.
type credentialForm struct {
	inputForm
	editing  bool
	original models.PlainCredential
}

func newCredentialForm(original *models.PlainCredential) credentialForm {
	f := credentialForm{inputForm: newInputForm(
		field{label: "website"},
		field{label: "username"},
		field{label: "password", secret: true},
		field{label: "notes"},
	)}
	if original == nil {
		return f
	}

	f.editing = true
	f.original = *original
	f.setValue(fieldWebsite, original.WebsiteURL)
	f.setValue(fieldUsername, original.Username)
	f.setValue(fieldPassword, original.Password)
	f.setValue(fieldNotes, original.Notes)
	return f
}

func (f credentialForm) plain() models.PlainCredential {
	return models.PlainCredential{
		WebsiteURL: f.trimmed(fieldWebsite),
		Username:   f.trimmed(fieldUsername),
		Password:   f.value(fieldPassword),
		Notes:      f.value(fieldNotes),
	}
}

// patch holds only the fields that differ from the original. Emptied notes
// are cleared rather than sealed as an empty string.
func (f credentialForm) patch() models.PlainCredentialPatch {
	next := f.plain()
	var p models.PlainCredentialPatch

	if next.WebsiteURL != f.original.WebsiteURL {
		p.WebsiteURL = &next.WebsiteURL
	}
	if next.Username != f.original.Username {
		p.Username = &next.Username
	}
	if next.Password != f.original.Password {
		p.Password = &next.Password
	}
	switch {
	case next.Notes == f.original.Notes:
	case next.Notes == "":
		p.ClearNotes = true
	default:
		p.Notes = &next.Notes
	}
	return p
}

func (f credentialForm) title() string {
	if f.editing {
		return "EDIT " + f.original.WebsiteURL
	}
	return "NEW CREDENTIAL"
}
