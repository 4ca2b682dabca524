package coursestore_test

import (
	"errors"
	"testing"

	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"github.com/kimohq/coursecatalog/internal/domain/models"
	"github.com/kimohq/coursecatalog/internal/testutil"
)

func TestParseVote(t *testing.T) {
	tests := []struct {
		in      string
		want    coursestore.Vote
		wantErr bool
	}{
		{"Positive", coursestore.VotePositive, false},
		{"Negative", coursestore.VoteNegative, false},
		{"", 0, true},
		{"positive", 0, true},
		{"Neutral", 0, true},
	}
	for _, tt := range tests {
		got, err := coursestore.ParseVote(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVote(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVote(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVote(%q): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSubmitRating_PositiveThenNegative(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fx.CreateCourse(ctx, "Intro to ML",
		models.Chapter{Name: "Image Classification", Ratings: 0},
		models.Chapter{Name: "Regression", Ratings: 0},
	)

	// Positive vote: chapter goes to 1, aggregate follows.
	if err := store.SubmitRating(ctx, course.ID.Hex(), "Image Classification", coursestore.VotePositive); err != nil {
		t.Fatalf("SubmitRating(Positive) failed: %v", err)
	}

	got, err := store.GetByID(ctx, course.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Chapters[0].Ratings != 1 {
		t.Errorf("chapter ratings after Positive: got %d, want 1", got.Chapters[0].Ratings)
	}
	if got.Ratings != 1 {
		t.Errorf("course ratings after Positive: got %d, want 1", got.Ratings)
	}
	if got.Ratings != got.ChapterRatingSum() {
		t.Errorf("aggregate invariant broken: course %d, chapter sum %d", got.Ratings, got.ChapterRatingSum())
	}

	// Negative vote: net zero.
	if err := store.SubmitRating(ctx, course.ID.Hex(), "Image Classification", coursestore.VoteNegative); err != nil {
		t.Fatalf("SubmitRating(Negative) failed: %v", err)
	}

	got, err = store.GetByID(ctx, course.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Chapters[0].Ratings != 0 {
		t.Errorf("chapter ratings after Negative: got %d, want 0", got.Chapters[0].Ratings)
	}
	if got.Ratings != 0 {
		t.Errorf("course ratings after Negative: got %d, want 0", got.Ratings)
	}
}

func TestSubmitRating_AggregateSumsAllChapters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fx.CreateCourse(ctx, "Intro to ML",
		models.Chapter{Name: "Image Classification", Ratings: 2},
		models.Chapter{Name: "Regression", Ratings: 3},
	)

	if err := store.SubmitRating(ctx, course.ID.Hex(), "Regression", coursestore.VotePositive); err != nil {
		t.Fatalf("SubmitRating failed: %v", err)
	}

	got, err := store.GetByID(ctx, course.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Ratings != 6 {
		t.Errorf("course ratings: got %d, want 6", got.Ratings)
	}
}

func TestSubmitRating_ChapterNowhere(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fx.CreateCourse(ctx, "Intro to ML",
		models.Chapter{Name: "Image Classification", Ratings: 0},
	)

	err := store.SubmitRating(ctx, course.ID.Hex(), "No Such Chapter", coursestore.VotePositive)

	var notFound *coursestore.ChapterNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ChapterNotFoundError, got %v", err)
	}

	// No mutation happened.
	got, _ := store.GetByID(ctx, course.ID.Hex())
	if got.Chapters[0].Ratings != 0 || got.Ratings != 0 {
		t.Errorf("expected no mutation, got chapter %d, course %d", got.Chapters[0].Ratings, got.Ratings)
	}
}

func TestSubmitRating_InvalidCourseID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The chapter exists (in some course), so the pre-check passes; the id
	// validation is the rung that fails.
	fx.CreateCourse(ctx, "Intro to ML",
		models.Chapter{Name: "Image Classification", Ratings: 0},
	)

	err := store.SubmitRating(ctx, "invalid-course-id", "Image Classification", coursestore.VotePositive)

	var notFound *coursestore.CourseNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CourseNotFoundError, got %v", err)
	}
	if want := "Course invalid-course-id not found"; err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}

func TestSubmitRating_ChapterInDifferentCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// "Regression" exists only under Course A; rating it against Course B
	// must fail on the scoped increment, not the global pre-check.
	fx.CreateCourse(ctx, "Course A", models.Chapter{Name: "Regression", Ratings: 0})
	other := fx.CreateCourse(ctx, "Course B", models.Chapter{Name: "Clustering", Ratings: 0})

	err := store.SubmitRating(ctx, other.ID.Hex(), "Regression", coursestore.VotePositive)

	var scopeErr *coursestore.ChapterNotInCourseError
	if !errors.As(err, &scopeErr) {
		t.Fatalf("expected ChapterNotInCourseError, got %v", err)
	}
	want := "Chapter Regression in Course " + other.ID.Hex() + " not found"
	if err.Error() != want {
		t.Errorf("message: got %q, want %q", err.Error(), want)
	}
}

func TestSubmitRating_MissingChapterRatingTreatedAsZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Insert a raw document whose second chapter has no ratings field at
	// all; the aggregate recompute must treat it as zero.
	created, err := store.Insert(ctx, models.Course{
		Name:        "Sparse Course",
		Date:        1684757000,
		Description: "chapters without rating fields",
		Domain:      []string{"programming"},
		Chapters: []models.Chapter{
			{Name: "First", Ratings: 2},
			{Name: "Second"},
		},
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := store.SubmitRating(ctx, created.ID.Hex(), "First", coursestore.VotePositive); err != nil {
		t.Fatalf("SubmitRating failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Ratings != 3 {
		t.Errorf("course ratings: got %d, want 3", got.Ratings)
	}
}
