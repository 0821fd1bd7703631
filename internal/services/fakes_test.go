package services

import (
	"context"
	"sort"

	"github.com/sjlutterbie/blog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// patchKeys returns the sorted field names of an update document
func patchKeys(patch bson.M) []string {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fakeAuthorStore is a map-backed AuthorStore that preserves insertion
// order and records the patches it is asked to apply
type fakeAuthorStore struct {
	authors map[primitive.ObjectID]*models.Author
	order   []primitive.ObjectID
	patches []bson.M
}

func newFakeAuthorStore() *fakeAuthorStore {
	return &fakeAuthorStore{authors: make(map[primitive.ObjectID]*models.Author)}
}

func (f *fakeAuthorStore) List(ctx context.Context, limit int64) ([]*models.Author, error) {
	var authors []*models.Author
	for _, id := range f.order {
		if int64(len(authors)) == limit {
			break
		}
		authors = append(authors, f.authors[id])
	}
	return authors, nil
}

func (f *fakeAuthorStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	author, ok := f.authors[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return author, nil
}

func (f *fakeAuthorStore) GetByUserName(ctx context.Context, userName string) (*models.Author, error) {
	for _, id := range f.order {
		if f.authors[id].UserName == userName {
			return f.authors[id], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeAuthorStore) Create(ctx context.Context, author *models.Author) error {
	author.ID = primitive.NewObjectID()
	f.authors[author.ID] = author
	f.order = append(f.order, author.ID)
	return nil
}

func (f *fakeAuthorStore) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}
	f.patches = append(f.patches, patch)

	author, ok := f.authors[id]
	if !ok {
		return models.ErrNotFound
	}
	if v, ok := patch["firstName"]; ok {
		author.FirstName = v.(string)
	}
	if v, ok := patch["lastName"]; ok {
		author.LastName = v.(string)
	}
	if v, ok := patch["userName"]; ok {
		author.UserName = v.(string)
	}
	return nil
}

func (f *fakeAuthorStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.authors, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakePostStore mirrors fakeAuthorStore for posts
type fakePostStore struct {
	posts   map[primitive.ObjectID]*models.Post
	order   []primitive.ObjectID
	patches []bson.M
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[primitive.ObjectID]*models.Post)}
}

func (f *fakePostStore) List(ctx context.Context, limit int64) ([]*models.Post, error) {
	var posts []*models.Post
	for _, id := range f.order {
		if int64(len(posts)) == limit {
			break
		}
		posts = append(posts, f.posts[id])
	}
	return posts, nil
}

func (f *fakePostStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return post, nil
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	f.posts[post.ID] = post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePostStore) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}
	f.patches = append(f.patches, patch)

	post, ok := f.posts[id]
	if !ok {
		return models.ErrNotFound
	}
	if v, ok := patch["title"]; ok {
		post.Title = v.(string)
	}
	if v, ok := patch["content"]; ok {
		post.Content = v.(string)
	}
	return nil
}

func (f *fakePostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.posts, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePostStore) DeleteByAuthor(ctx context.Context, authorID primitive.ObjectID) error {
	var kept []primitive.ObjectID
	for _, id := range f.order {
		if f.posts[id].Author == authorID {
			delete(f.posts, id)
			continue
		}
		kept = append(kept, id)
	}
	f.order = kept
	return nil
}
