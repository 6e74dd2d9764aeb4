// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlechunk"
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/comment"
	"github.com/perusehq/peruse/pkg/storage/ent/credential"
	"github.com/perusehq/peruse/pkg/storage/ent/historyentry"
	"github.com/perusehq/peruse/pkg/storage/ent/identity"
	"github.com/perusehq/peruse/pkg/storage/ent/post"
	"github.com/perusehq/peruse/pkg/storage/ent/schema"
	"github.com/perusehq/peruse/pkg/storage/ent/session"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescURL is the schema descriptor for url field.
	articleDescURL := articleFields[0].Descriptor()
	// article.URLValidator is a validator for the "url" field. It is called by the builders before save.
	article.URLValidator = articleDescURL.Validators[0].(func(string) error)
	// articleDescTitle is the schema descriptor for title field.
	articleDescTitle := articleFields[1].Descriptor()
	// article.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	article.TitleValidator = articleDescTitle.Validators[0].(func(string) error)
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleFields[3].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	articlechunkFields := schema.ArticleChunk{}.Fields()
	_ = articlechunkFields
	// articlechunkDescCreatedAt is the schema descriptor for created_at field.
	articlechunkDescCreatedAt := articlechunkFields[3].Descriptor()
	// articlechunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	articlechunk.DefaultCreatedAt = articlechunkDescCreatedAt.Default.(func() time.Time)
	// articlechunkDescID is the schema descriptor for id field.
	articlechunkDescID := articlechunkFields[0].Descriptor()
	// articlechunk.IDValidator is a validator for the "id" field. It is called by the builders before save.
	articlechunk.IDValidator = articlechunkDescID.Validators[0].(func(string) error)
	articlemetadataFields := schema.ArticleMetadata{}.Fields()
	_ = articlemetadataFields
	// articlemetadataDescCreatedAt is the schema descriptor for created_at field.
	articlemetadataDescCreatedAt := articlemetadataFields[5].Descriptor()
	// articlemetadata.DefaultCreatedAt holds the default value on creation for the created_at field.
	articlemetadata.DefaultCreatedAt = articlemetadataDescCreatedAt.Default.(func() time.Time)
	// articlemetadataDescUpdatedAt is the schema descriptor for updated_at field.
	articlemetadataDescUpdatedAt := articlemetadataFields[6].Descriptor()
	// articlemetadata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	articlemetadata.DefaultUpdatedAt = articlemetadataDescUpdatedAt.Default.(func() time.Time)
	// articlemetadata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	articlemetadata.UpdateDefaultUpdatedAt = articlemetadataDescUpdatedAt.UpdateDefault.(func() time.Time)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescContent is the schema descriptor for content field.
	commentDescContent := commentFields[6].Descriptor()
	// comment.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	comment.ContentValidator = commentDescContent.Validators[0].(func(string) error)
	// commentDescUpvote is the schema descriptor for upvote field.
	commentDescUpvote := commentFields[7].Descriptor()
	// comment.DefaultUpvote holds the default value on creation for the upvote field.
	comment.DefaultUpvote = commentDescUpvote.Default.(int)
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[8].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescProvider is the schema descriptor for provider field.
	credentialDescProvider := credentialFields[1].Descriptor()
	// credential.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	credential.ProviderValidator = credentialDescProvider.Validators[0].(func(string) error)
	// credentialDescProviderAccountID is the schema descriptor for provider_account_id field.
	credentialDescProviderAccountID := credentialFields[2].Descriptor()
	// credential.ProviderAccountIDValidator is a validator for the "provider_account_id" field. It is called by the builders before save.
	credential.ProviderAccountIDValidator = credentialDescProviderAccountID.Validators[0].(func(string) error)
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[3].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescWeight is the schema descriptor for weight field.
	historyentryDescWeight := historyentryFields[1].Descriptor()
	// historyentry.DefaultWeight holds the default value on creation for the weight field.
	historyentry.DefaultWeight = historyentryDescWeight.Default.(float64)
	// historyentryDescAddedAt is the schema descriptor for added_at field.
	historyentryDescAddedAt := historyentryFields[2].Descriptor()
	// historyentry.DefaultAddedAt holds the default value on creation for the added_at field.
	historyentry.DefaultAddedAt = historyentryDescAddedAt.Default.(func() time.Time)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescEmail is the schema descriptor for email field.
	identityDescEmail := identityFields[0].Descriptor()
	// identity.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	identity.EmailValidator = identityDescEmail.Validators[0].(func(string) error)
	// identityDescSiteOwner is the schema descriptor for site_owner field.
	identityDescSiteOwner := identityFields[2].Descriptor()
	// identity.DefaultSiteOwner holds the default value on creation for the site_owner field.
	identity.DefaultSiteOwner = identityDescSiteOwner.Default.(bool)
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[3].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescCategory is the schema descriptor for category field.
	postDescCategory := postFields[0].Descriptor()
	// post.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	post.CategoryValidator = postDescCategory.Validators[0].(func(string) error)
	// postDescSlug is the schema descriptor for slug field.
	postDescSlug := postFields[1].Descriptor()
	// post.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	post.SlugValidator = postDescSlug.Validators[0].(func(string) error)
	// postDescCreatedAt is the schema descriptor for created_at field.
	postDescCreatedAt := postFields[3].Descriptor()
	// post.DefaultCreatedAt holds the default value on creation for the created_at field.
	post.DefaultCreatedAt = postDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescToken is the schema descriptor for token field.
	sessionDescToken := sessionFields[1].Descriptor()
	// session.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	session.TokenValidator = sessionDescToken.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[3].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescKey is the schema descriptor for key field.
	sourceDescKey := sourceFields[0].Descriptor()
	// source.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	source.KeyValidator = sourceDescKey.Validators[0].(func(string) error)
	// sourceDescName is the schema descriptor for name field.
	sourceDescName := sourceFields[1].Descriptor()
	// source.NameValidator is a validator for the "name" field. It is called by the builders before save.
	source.NameValidator = sourceDescName.Validators[0].(func(string) error)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[3].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
}
