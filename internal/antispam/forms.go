package antispam

import "github.com/standupsite/promo-backend/internal/domain"

// Field names shared by the public forms and their JSON bodies.
const (
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldRelationship = "relationship"
	FieldWhereSeen    = "where_seen"
	FieldHowFound     = "how_found"
	FieldReview       = "review"
	FieldPermission   = "permission"
	FieldMessage      = "message"
)

// Length limits of the public forms.
const (
	MaxPersonName = 50
	MaxName       = 100
	MaxProvenance = 100
	MaxEmail      = 255
	MinPhone      = 10
	MaxPhone      = 20
	MinReview     = 10
	MaxReview     = 1000
	MinMessage    = 10
	MaxMessage    = 2000
)

// SubscribeSchema validates the footer subscribe form.
func SubscribeSchema() Schema {
	return NewSchema(
		Field{Name: FieldFirstName, Rules: []Rule{
			MinLen(1, "First name is required"),
			MaxLen(MaxPersonName, "First name must be less than 50 characters"),
		}},
		Field{Name: FieldLastName, Rules: []Rule{
			MinLen(1, "Last name is required"),
			MaxLen(MaxPersonName, "Last name must be less than 50 characters"),
		}},
		Field{Name: FieldEmail, Rules: []Rule{
			Email("Please enter a valid email"),
			MaxLen(MaxEmail, "Email must be less than 255 characters"),
		}},
		Field{Name: FieldPhone, Rules: []Rule{
			MinLen(MinPhone, "Please enter a valid phone number"),
			MaxLen(MaxPhone, "Phone number must be less than 20 characters"),
		}},
	)
}

// ReviewSchema validates the submit-review form. Email, where_seen and
// how_found are optional; an empty string counts as absent.
func ReviewSchema() Schema {
	return NewSchema(
		Field{Name: FieldName, Rules: []Rule{
			MinLen(1, "Name is required"),
			MaxLen(MaxName, "Name must be less than 100 characters"),
		}},
		Field{Name: FieldEmail, Optional: true, Rules: []Rule{
			Email("Invalid email address"),
			MaxLen(MaxEmail, "Email must be less than 255 characters"),
		}},
		Field{Name: FieldRelationship, Rules: []Rule{
			OneOf("Please select how you know the comedian's work", domain.Relationships()...),
		}},
		Field{Name: FieldWhereSeen, Optional: true, Rules: []Rule{
			MaxLen(MaxProvenance, "Where you saw the show must be less than 100 characters"),
		}},
		Field{Name: FieldHowFound, Optional: true, Rules: []Rule{
			MaxLen(MaxProvenance, "How you found out must be less than 100 characters"),
		}},
		Field{Name: FieldReview, Rules: []Rule{
			MinLen(MinReview, "Review must be at least 10 characters"),
			MaxLen(MaxReview, "Review must be less than 1000 characters"),
		}},
		Field{Name: FieldPermission, Rules: []Rule{
			IsTrue("You must agree to allow your review to be displayed"),
		}},
	)
}

// ContactSchema validates the contact form.
func ContactSchema() Schema {
	return NewSchema(
		Field{Name: FieldName, Rules: []Rule{
			MinLen(1, "Name is required"),
			MaxLen(MaxName, "Name must be less than 100 characters"),
		}},
		Field{Name: FieldEmail, Rules: []Rule{
			Email("Please enter a valid email"),
			MaxLen(MaxEmail, "Email must be less than 255 characters"),
		}},
		Field{Name: FieldMessage, Rules: []Rule{
			MinLen(MinMessage, "Message must be at least 10 characters"),
			MaxLen(MaxMessage, "Message must be less than 2000 characters"),
		}},
	)
}
