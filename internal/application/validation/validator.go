package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
)

const (
	msgRequired      = "%s is required"
	msgCannotBeEmpty = "%s cannot be empty"
	msgMaxLength     = "%s must be max %s characters"
	msgNotString     = "%s must be a string"
	msgRating        = "Rating must be an integer between 1 and 5"
	msgPostID        = "post_id is required and must be an integer"
	msgNoFields      = "No fields to update"
)

// field rules shared by the create and update paths
var (
	postTitleRule     = fieldRule{name: "Title", tag: fmt.Sprintf("required,max=%d", model.PostTitleMaxLength)}
	postContentRule   = fieldRule{name: "Content", tag: "required"}
	postAuthorRule    = fieldRule{name: "Author", tag: fmt.Sprintf("required,max=%d", model.PostAuthorMaxLength)}
	commentAuthorRule = fieldRule{name: "Author", tag: fmt.Sprintf("required,max=%d", model.CommentAuthorMaxLength)}
	commentBodyRule   = fieldRule{name: "Content", tag: "required"}
	ratingTag         = fmt.Sprintf("min=%d,max=%d", model.RatingMin, model.RatingMax)
)

type fieldRule struct {
	name string
	tag  string
}

type mode int

const (
	modeCreate mode = iota
	modeUpdate
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) CreatePost(dto *model.CreatePostDTO) (*model.Post, error) {
	title, err := v.requiredString(postTitleRule, dto.Title)
	if err != nil {
		return nil, err
	}
	content, err := v.requiredString(postContentRule, dto.Content)
	if err != nil {
		return nil, err
	}
	author, err := v.requiredString(postAuthorRule, dto.Author)
	if err != nil {
		return nil, err
	}
	return &model.Post{Title: title, Content: content, Author: author}, nil
}

func (v *Validator) UpdatePost(dto *model.UpdatePostDTO) (*model.PostUpdate, error) {
	update := &model.PostUpdate{}
	var err error
	if update.Title, err = v.optionalString(postTitleRule, dto.Title); err != nil {
		return nil, err
	}
	if update.Content, err = v.optionalString(postContentRule, dto.Content); err != nil {
		return nil, err
	}
	if update.Author, err = v.optionalString(postAuthorRule, dto.Author); err != nil {
		return nil, err
	}
	if update.Empty() {
		return nil, custom_errors.NewValidationError(msgNoFields)
	}
	return update, nil
}

func (v *Validator) CreateComment(dto *model.CreateCommentDTO) (*model.Comment, error) {
	if !dto.PostID.Present() || dto.PostID.Value == 0 {
		return nil, custom_errors.NewValidationError(msgPostID)
	}
	author, err := v.requiredString(commentAuthorRule, dto.Author)
	if err != nil {
		return nil, err
	}
	content, err := v.requiredString(commentBodyRule, dto.Content)
	if err != nil {
		return nil, err
	}
	rating, err := v.rating(dto.Rating)
	if err != nil {
		return nil, err
	}
	return &model.Comment{
		PostID:  dto.PostID.Value,
		Author:  author,
		Content: content,
		Rating:  rating,
	}, nil
}

func (v *Validator) UpdateComment(dto *model.UpdateCommentDTO) (*model.CommentUpdate, error) {
	update := &model.CommentUpdate{}
	var err error
	if update.Author, err = v.optionalString(commentAuthorRule, dto.Author); err != nil {
		return nil, err
	}
	if update.Content, err = v.optionalString(commentBodyRule, dto.Content); err != nil {
		return nil, err
	}
	if dto.Rating.Set {
		if update.Rating, err = v.rating(dto.Rating); err != nil {
			return nil, err
		}
		update.RatingSet = true
	}
	if update.Empty() {
		return nil, custom_errors.NewValidationError(msgNoFields)
	}
	return update, nil
}

func (v *Validator) requiredString(rule fieldRule, field model.Optional[string]) (string, error) {
	if field.Invalid {
		return "", custom_errors.NewValidationError(msgNotString, rule.name)
	}
	value := strings.TrimSpace(field.Value)
	if err := v.check(rule, value, modeCreate); err != nil {
		return "", err
	}
	return value, nil
}

func (v *Validator) optionalString(rule fieldRule, field model.Optional[string]) (*string, error) {
	if !field.Set {
		return nil, nil
	}
	if field.Invalid {
		return nil, custom_errors.NewValidationError(msgNotString, rule.name)
	}
	value := strings.TrimSpace(field.Value)
	if err := v.check(rule, value, modeUpdate); err != nil {
		return nil, err
	}
	return &value, nil
}

// rating returns nil for an omitted or null rating.
func (v *Validator) rating(field model.Optional[int]) (*int, error) {
	if !field.Set || field.Null {
		return nil, nil
	}
	if field.Invalid {
		return nil, custom_errors.NewValidationError(msgRating)
	}
	if err := v.validate.Var(field.Value, ratingTag); err != nil {
		return nil, custom_errors.NewValidationError(msgRating)
	}
	rating := field.Value
	return &rating, nil
}

func (v *Validator) check(rule fieldRule, value string, m mode) error {
	err := v.validate.Var(value, rule.tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %s: %w", rule.name, err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		if m == modeUpdate {
			return custom_errors.NewValidationError(msgCannotBeEmpty, rule.name)
		}
		return custom_errors.NewValidationError(msgRequired, rule.name)
	case "max":
		return custom_errors.NewValidationError(msgMaxLength, rule.name, fe.Param())
	default:
		return custom_errors.NewValidationError("%s is invalid", rule.name)
	}
}
