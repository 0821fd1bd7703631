package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is embedded in its parent post and has no lifecycle of its own
type Comment struct {
	Content string `bson:"content" json:"content"`
}

// Post is a stored record in the blogposts collection. Author holds the id
// of a record in the authors collection; the reference is resolved
// explicitly at read time, it is not a join the store performs. Created is
// an opaque client-supplied string.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Author   primitive.ObjectID `bson:"author" json:"author"`
	Comments []Comment          `bson:"comments" json:"comments"`
	Created  string             `bson:"created" json:"created"`
}

// PostView is the full projection with embedded comments
type PostView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorName string    `json:"authorName"`
	Comments   []Comment `json:"comments"`
	Created    string    `json:"created"`
}

// PostListView is the list projection, same fields minus comments
type PostListView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

// Serialize builds the full projection. The author must be resolved by the
// caller beforehand; a nil author yields an empty authorName.
func (p *Post) Serialize(author *Author) *PostView {
	comments := p.Comments
	if comments == nil {
		comments = []Comment{}
	}
	return &PostView{
		ID:         p.ID.Hex(),
		Title:      p.Title,
		Content:    p.Content,
		AuthorName: author.displayNameOrEmpty(),
		Comments:   comments,
		Created:    p.Created,
	}
}

// SerializeNoComments builds the list projection
func (p *Post) SerializeNoComments(author *Author) *PostListView {
	return &PostListView{
		ID:         p.ID.Hex(),
		Title:      p.Title,
		Content:    p.Content,
		AuthorName: author.displayNameOrEmpty(),
		Created:    p.Created,
	}
}

func (a *Author) displayNameOrEmpty() string {
	if a == nil {
		return ""
	}
	return a.DisplayName()
}

type CreatePostRequest struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	Created  string    `json:"created"`
	Comments []Comment `json:"comments"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			is.MongoID.Error("author must be a valid author id"),
		),
	)
}

// UpdatePostRequest carries an allow-listed patch. The author reference is
// immutable through updates and is deliberately absent here.
type UpdatePostRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
	)
}
