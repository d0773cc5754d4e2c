package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
)

const (
	usersCollection    = "users"
	listingsCollection = "listings"
)

type userDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	ContactNumber string             `bson:"contact_number"`
	Password      string             `bson:"password"`
	CreatedAt     time.Time          `bson:"created_at"`
}

type listingDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags"`
	OwnerEmail  string             `bson:"owner_email"`
	Images      []string           `bson:"images"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func objectIDFromDomain(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

func toUserDocument(u *entity.User) (*userDocument, error) {
	oid, err := objectIDFromDomain(u.ID)
	if err != nil {
		return nil, err
	}
	return &userDocument{
		ID:            oid,
		Name:          u.Name,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		Password:      u.Password,
		CreatedAt:     u.CreatedAt,
	}, nil
}

func toDomainUser(d *userDocument) *entity.User {
	return &entity.User{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		ContactNumber: d.ContactNumber,
		Password:      d.Password,
		CreatedAt:     d.CreatedAt,
	}
}

func toListingDocument(l *entity.Listing) (*listingDocument, error) {
	oid, err := objectIDFromDomain(l.ID)
	if err != nil {
		return nil, err
	}
	return &listingDocument{
		ID:          oid,
		Title:       l.Title,
		Description: l.Description,
		Tags:        l.Tags,
		OwnerEmail:  l.OwnerEmail,
		Images:      l.Images,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}, nil
}

func toDomainListing(d *listingDocument) *entity.Listing {
	return &entity.Listing{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Tags:        d.Tags,
		OwnerEmail:  d.OwnerEmail,
		Images:      d.Images,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDomainListings(docs []*listingDocument) []*entity.Listing {
	out := make([]*entity.Listing, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomainListing(d))
	}
	return out
}
