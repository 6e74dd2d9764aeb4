// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content_text", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_url",
				Unique:  true,
				Columns: []*schema.Column{ArticlesColumns[1]},
			},
			{
				Name:    "article_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[4]},
			},
		},
	}
	// ArticleChunksColumns holds the columns for the "article_chunks" table.
	ArticleChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "article_id", Type: field.TypeInt},
	}
	// ArticleChunksTable holds the schema information for the "article_chunks" table.
	ArticleChunksTable = &schema.Table{
		Name:       "article_chunks",
		Columns:    ArticleChunksColumns,
		PrimaryKey: []*schema.Column{ArticleChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "article_chunks_articles_chunks",
				Columns:    []*schema.Column{ArticleChunksColumns[3]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "articlechunk_article_id",
				Unique:  false,
				Columns: []*schema.Column{ArticleChunksColumns[3]},
			},
		},
	}
	// ArticleMetadataColumns holds the columns for the "article_metadata" table.
	ArticleMetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "article_id", Type: field.TypeInt},
		{Name: "source_id", Type: field.TypeInt},
	}
	// ArticleMetadataTable holds the schema information for the "article_metadata" table.
	ArticleMetadataTable = &schema.Table{
		Name:       "article_metadata",
		Columns:    ArticleMetadataColumns,
		PrimaryKey: []*schema.Column{ArticleMetadataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "article_metadata_articles_metadata",
				Columns:    []*schema.Column{ArticleMetadataColumns[6]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "article_metadata_sources_metadata",
				Columns:    []*schema.Column{ArticleMetadataColumns[7]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "articlemetadata_article_id_source_id",
				Unique:  true,
				Columns: []*schema.Column{ArticleMetadataColumns[6], ArticleMetadataColumns[7]},
			},
			{
				Name:    "articlemetadata_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{ArticleMetadataColumns[3]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "author_name", Type: field.TypeString, Nullable: true},
		{Name: "author_email", Type: field.TypeString, Nullable: true},
		{Name: "author_ip", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString},
		{Name: "upvote", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
		{Name: "identity_id", Type: field.TypeInt, Nullable: true},
		{Name: "post_id", Type: field.TypeInt},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_comments_parent",
				Columns:    []*schema.Column{CommentsColumns[7]},
				RefColumns: []*schema.Column{CommentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "comments_identities_comments",
				Columns:    []*schema.Column{CommentsColumns[8]},
				RefColumns: []*schema.Column{IdentitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "comments_posts_comments",
				Columns:    []*schema.Column{CommentsColumns[9]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_post_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[9], CommentsColumns[6]},
			},
			{
				Name:    "comment_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[7]},
			},
			{
				Name:    "comment_identity_id",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[8]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "provider_account_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "identity_id", Type: field.TypeInt},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credentials_identities_credentials",
				Columns:    []*schema.Column{CredentialsColumns[4]},
				RefColumns: []*schema.Column{IdentitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "credential_provider_provider_account_id",
				Unique:  true,
				Columns: []*schema.Column{CredentialsColumns[1], CredentialsColumns[2]},
			},
			{
				Name:    "credential_identity_id",
				Unique:  false,
				Columns: []*schema.Column{CredentialsColumns[4]},
			},
		},
	}
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "weight", Type: field.TypeFloat64, Default: 0},
		{Name: "added_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "article_id", Type: field.TypeInt},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "history_entries_articles_history",
				Columns:    []*schema.Column{HistoryEntriesColumns[3]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_article_id",
				Unique:  true,
				Columns: []*schema.Column{HistoryEntriesColumns[3]},
			},
			{
				Name:    "historyentry_added_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[2]},
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "site_owner", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "identity_email",
				Unique:  true,
				Columns: []*schema.Column{IdentitiesColumns[1]},
			},
		},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "post_category_slug",
				Unique:  true,
				Columns: []*schema.Column{PostsColumns[1], PostsColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "identity_id", Type: field.TypeInt},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_identities_sessions",
				Columns:    []*schema.Column{SessionsColumns[4]},
				RefColumns: []*schema.Column{IdentitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_token",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_identity_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_key",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		ArticleChunksTable,
		ArticleMetadataTable,
		CommentsTable,
		CredentialsTable,
		HistoryEntriesTable,
		IdentitiesTable,
		PostsTable,
		SessionsTable,
		SourcesTable,
	}
)

func init() {
	ArticleChunksTable.ForeignKeys[0].RefTable = ArticlesTable
	ArticleMetadataTable.ForeignKeys[0].RefTable = ArticlesTable
	ArticleMetadataTable.ForeignKeys[1].RefTable = SourcesTable
	CommentsTable.ForeignKeys[0].RefTable = CommentsTable
	CommentsTable.ForeignKeys[1].RefTable = IdentitiesTable
	CommentsTable.ForeignKeys[2].RefTable = PostsTable
	CredentialsTable.ForeignKeys[0].RefTable = IdentitiesTable
	HistoryEntriesTable.ForeignKeys[0].RefTable = ArticlesTable
	SessionsTable.ForeignKeys[0].RefTable = IdentitiesTable
}
