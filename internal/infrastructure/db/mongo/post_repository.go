package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarah-habibi/blog-api/internal/core/domain"
	"github.com/sarah-habibi/blog-api/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository persists posts in the posts collection.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	Title             string             `bson:"title"`
	Content           string             `bson:"content"`
	Image             string             `bson:"image,omitempty"`
	Category          string             `bson:"category"`
	Slug              string             `bson:"slug"`
	Bookmarks         []string           `bson:"bookmarks"`
	NumberOfBookmarks int                `bson:"number_of_bookmarks"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (d postDoc) toDomain() *domain.Post {
	bookmarks := d.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return &domain.Post{
		ID:                d.ID.Hex(),
		UserID:            d.UserID,
		Title:             d.Title,
		Content:           d.Content,
		Image:             d.Image,
		Category:          d.Category,
		Slug:              d.Slug,
		Bookmarks:         bookmarks,
		NumberOfBookmarks: d.NumberOfBookmarks,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// filterToBson translates the query-builder value object into Mongo's native
// filter syntax. Zero fields contribute no predicate.
func filterToBson(filter ports.PostFilter) (bson.M, error) {
	out := bson.M{}
	if filter.UserID != "" {
		out["user_id"] = filter.UserID
	}
	if filter.Category != "" {
		out["category"] = filter.Category
	}
	if filter.Slug != "" {
		out["slug"] = filter.Slug
	}
	if filter.PostID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.PostID)
		if err != nil {
			return nil, domain.ErrPostNotFound
		}
		out["_id"] = oid
	}
	if filter.SearchTerm != "" {
		regex := primitive.Regex{Pattern: filter.SearchTerm, Options: "i"}
		out["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": regex}},
			bson.M{"content": bson.M{"$regex": regex}},
		}
	}
	if !filter.CreatedSince.IsZero() {
		out["created_at"] = bson.M{"$gte": filter.CreatedSince}
	}
	return out, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := postDoc{
		UserID:            post.UserID,
		Title:             post.Title,
		Content:           post.Content,
		Image:             post.Image,
		Category:          post.Category,
		Slug:              post.Slug,
		Bookmarks:         post.Bookmarks,
		NumberOfBookmarks: post.NumberOfBookmarks,
		CreatedAt:         post.CreatedAt,
		UpdatedAt:         post.UpdatedAt,
	}
	if doc.Bookmarks == nil {
		doc.Bookmarks = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPostExists
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) Find(ctx context.Context, filter ports.PostFilter, page ports.PostPage) ([]domain.Post, error) {
	query, err := filterToBson(filter)
	if err != nil {
		// an unparseable post id matches nothing
		return []domain.Post{}, nil
	}

	direction := -1
	if page.SortAsc {
		direction = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: direction}}).
		SetSkip(int64(page.StartIndex))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

func (r *PostRepository) Count(ctx context.Context, filter ports.PostFilter) (int64, error) {
	query, err := filterToBson(filter)
	if err != nil {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, query)
}

func (r *PostRepository) Update(ctx context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != "" {
		set["title"] = update.Title
	}
	if update.Content != "" {
		set["content"] = update.Content
	}
	if update.Category != "" {
		set["category"] = update.Category
	}
	if update.Image != "" {
		set["image"] = update.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc postDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// SetBookmarks writes the membership list and its counter in a single
// document update, so a reader never observes them out of step.
func (r *PostRepository) SetBookmarks(ctx context.Context, id string, bookmarks []string, count int) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	if bookmarks == nil {
		bookmarks = []string{}
	}

	update := bson.M{"$set": bson.M{
		"bookmarks":           bookmarks,
		"number_of_bookmarks": count,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc postDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("set bookmarks: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) FindBookmarkedBy(ctx context.Context, userID string) ([]domain.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookmarks": bson.M{"$in": bson.A{userID}}})
	if err != nil {
		return nil, fmt.Errorf("find bookmarked posts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

func decodePosts(ctx context.Context, cursor *mongo.Cursor) ([]domain.Post, error) {
	posts := []domain.Post{}
	for cursor.Next(ctx) {
		var doc postDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, *doc.toDomain())
	}
	return posts, cursor.Err()
}

// EnsureIndexes creates the uniqueness indexes for titles and slugs.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "bookmarks", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
