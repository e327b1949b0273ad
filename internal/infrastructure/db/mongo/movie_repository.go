package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

// MovieRepository implements ports.MovieRepository on MongoDB.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(movieCollection)}
}

type movieDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Director    string             `bson:"director"`
	Producer    string             `bson:"producer"`
	ReleaseDate string             `bson:"release_date"`
	Description string             `bson:"description,omitempty"`
}

func (d movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Director:    d.Director,
		Producer:    d.Producer,
		ReleaseDate: d.ReleaseDate,
		Description: d.Description,
	}
}

func fromDomain(m *domain.Movie) movieDoc {
	return movieDoc{
		Title:       m.Title,
		Director:    m.Director,
		Producer:    m.Producer,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
	}
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	res, err := r.coll.InsertOne(ctx, fromDomain(m))
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var doc movieDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByTitles performs the single batched lookup the sync routine relies on.
// Matching is exact and case-sensitive.
func (r *MovieRepository) FindByTitles(ctx context.Context, titles []string) ([]*domain.Movie, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"title": bson.M{"$in": titles}})
	if err != nil {
		return nil, fmt.Errorf("find movies by title: %w", err)
	}
	defer cur.Close(ctx)

	var movies []*domain.Movie
	for cur.Next(ctx) {
		var doc movieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find movies by title: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) List(ctx context.Context, page, limit int) ([]*domain.Movie, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []*domain.Movie
	for cur.Next(ctx) {
		var doc movieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	return movies, total, nil
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomain(m))
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
