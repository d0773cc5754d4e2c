package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	"github.com/carhub-dev/carhub-api/internal/domain/repository"
)

type ListingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{collection: db.Collection(listingsCollection)}
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	doc, err := toListingDocument(l)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	l.ID = doc.ID.Hex()
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc listingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toDomainListing(&doc), nil
}

func (r *ListingRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_email": ownerEmail})
	if err != nil {
		return nil, err
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainListings(docs), nil
}

// Update applies the partial field set as a single $set so concurrent
// updates to disjoint fields cannot lose each other's writes.
func (r *ListingRepository) Update(ctx context.Context, id string, upd repository.ListingUpdate) (*entity.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}
	if upd.Images != nil {
		set["images"] = upd.Images
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc listingDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toDomainListing(&doc), nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search delegates to the text index over title/description/tags. Relevance
// ranking and tokenization are owned by the store.
func (r *ListingRepository) Search(ctx context.Context, query string, limit int64) ([]*entity.Listing, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainListings(docs), nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
