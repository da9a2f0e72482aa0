package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yamdb-team/yamdb-api/internal/model"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/pkg/apperror"
)

func ptr[T any](v T) *T {
	return &v
}

type fakeUserRepo struct {
	users   map[uuid.UUID]*model.User
	created []*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperror.ErrConflict
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context, search string) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		if search == "" || strings.Contains(strings.ToLower(u.Username), strings.ToLower(search)) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperror.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	for id, u := range f.users {
		if u.Username == username {
			delete(f.users, id)
			return nil
		}
	}
	return apperror.ErrNotFound
}

type fakeCategoryRepo struct {
	categories map[string]*model.Category
}

func newFakeCategoryRepo(categories ...*model.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: make(map[string]*model.Category)}
	for _, c := range categories {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		f.categories[c.Slug] = c
	}
	return f
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *model.Category) error {
	if _, ok := f.categories[category.Slug]; ok {
		return apperror.ErrConflict
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.Slug] = category
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	if c, ok := f.categories[slug]; ok {
		return c, nil
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, search string) ([]*model.Category, error) {
	var out []*model.Category
	for _, c := range f.categories {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, slug string) error {
	if _, ok := f.categories[slug]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.categories, slug)
	return nil
}

type fakeGenreRepo struct {
	genres map[string]*model.Genre
}

func newFakeGenreRepo(genres ...*model.Genre) *fakeGenreRepo {
	f := &fakeGenreRepo{genres: make(map[string]*model.Genre)}
	for _, g := range genres {
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		f.genres[g.Slug] = g
	}
	return f
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *model.Genre) error {
	if _, ok := f.genres[genre.Slug]; ok {
		return apperror.ErrConflict
	}
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	f.genres[genre.Slug] = genre
	return nil
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, slug string) (*model.Genre, error) {
	if g, ok := f.genres[slug]; ok {
		return g, nil
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeGenreRepo) FindAll(_ context.Context, search string) ([]*model.Genre, error) {
	var out []*model.Genre
	for _, g := range f.genres {
		if search == "" || strings.Contains(strings.ToLower(g.Name), strings.ToLower(search)) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, slug string) error {
	if _, ok := f.genres[slug]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.genres, slug)
	return nil
}

type fakeTitleRepo struct {
	titles  map[uuid.UUID]*model.Title
	order   []uuid.UUID
	ratings map[uuid.UUID]float64

	// what the last Update call received as its genres argument
	updatedGenres    []model.Genre
	updatedGenresSet bool
}

func newFakeTitleRepo(titles ...*model.Title) *fakeTitleRepo {
	f := &fakeTitleRepo{
		titles:  make(map[uuid.UUID]*model.Title),
		ratings: make(map[uuid.UUID]float64),
	}
	for _, t := range titles {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		f.titles[t.ID] = t
		f.order = append(f.order, t.ID)
	}
	return f
}

func (f *fakeTitleRepo) Create(_ context.Context, title *model.Title) error {
	if title.ID == uuid.Nil {
		title.ID = uuid.New()
	}
	f.titles[title.ID] = title
	f.order = append(f.order, title.ID)
	return nil
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Title, error) {
	if t, ok := f.titles[id]; ok {
		return t, nil
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeTitleRepo) FindAll(_ context.Context, filter repository.TitleFilter) ([]*model.Title, error) {
	out := make([]*model.Title, 0, len(f.order))
	for _, id := range f.order {
		t := f.titles[id]
		if filter.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Year != 0 && t.Year != filter.Year {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTitleRepo) Update(_ context.Context, title *model.Title, genres []model.Genre) error {
	if _, ok := f.titles[title.ID]; !ok {
		return apperror.ErrNotFound
	}
	f.updatedGenres = genres
	f.updatedGenresSet = genres != nil
	if genres != nil {
		title.Genres = genres
	}
	f.titles[title.ID] = title
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.titles[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.titles, id)
	return nil
}

func (f *fakeTitleRepo) Rating(_ context.Context, titleID uuid.UUID) (*float64, error) {
	if avg, ok := f.ratings[titleID]; ok {
		return &avg, nil
	}
	return nil, nil
}

func (f *fakeTitleRepo) Ratings(_ context.Context, titleIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	out := make(map[uuid.UUID]float64)
	for _, id := range titleIDs {
		if avg, ok := f.ratings[id]; ok {
			out[id] = avg
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
	order   []uuid.UUID
	authors map[uuid.UUID]*model.User
}

func newFakeReviewRepo(reviews ...*model.Review) *fakeReviewRepo {
	f := &fakeReviewRepo{
		reviews: make(map[uuid.UUID]*model.Review),
		authors: make(map[uuid.UUID]*model.User),
	}
	for _, r := range reviews {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		if r.PubDate.IsZero() {
			r.PubDate = time.Now()
		}
		f.reviews[r.ID] = r
		f.order = append(f.order, r.ID)
	}
	return f
}

// knows lets the fake hydrate Author the way the real repository
// preloads it.
func (f *fakeReviewRepo) knows(users ...*model.User) *fakeReviewRepo {
	for _, u := range users {
		f.authors[u.ID] = u
	}
	return f
}

func (f *fakeReviewRepo) hydrate(r *model.Review) *model.Review {
	if author, ok := f.authors[r.AuthorID]; ok {
		r.Author = *author
	}
	return r
}

func (f *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	for _, existing := range f.reviews {
		if existing.TitleID == review.TitleID && existing.AuthorID == review.AuthorID {
			return apperror.ErrConflict
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.PubDate.IsZero() {
		review.PubDate = time.Now()
	}
	f.reviews[review.ID] = review
	f.order = append(f.order, review.ID)
	return nil
}

func (f *fakeReviewRepo) FindForTitle(_ context.Context, titleID, reviewID uuid.UUID) (*model.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok || r.TitleID != titleID {
		return nil, apperror.ErrNotFound
	}
	return f.hydrate(r), nil
}

func (f *fakeReviewRepo) ListByTitle(_ context.Context, titleID uuid.UUID) ([]*model.Review, error) {
	var out []*model.Review
	for _, id := range f.order {
		if r, ok := f.reviews[id]; ok && r.TitleID == titleID {
			out = append(out, f.hydrate(r))
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *model.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return apperror.ErrNotFound
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, titleID, reviewID uuid.UUID) error {
	r, ok := f.reviews[reviewID]
	if !ok || r.TitleID != titleID {
		return apperror.ErrNotFound
	}
	delete(f.reviews, reviewID)
	return nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	order    []uuid.UUID
	authors  map[uuid.UUID]*model.User
}

func newFakeCommentRepo(comments ...*model.Comment) *fakeCommentRepo {
	f := &fakeCommentRepo{
		comments: make(map[uuid.UUID]*model.Comment),
		authors:  make(map[uuid.UUID]*model.User),
	}
	for _, c := range comments {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if c.PubDate.IsZero() {
			c.PubDate = time.Now()
		}
		f.comments[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return f
}

func (f *fakeCommentRepo) knows(users ...*model.User) *fakeCommentRepo {
	for _, u := range users {
		f.authors[u.ID] = u
	}
	return f
}

func (f *fakeCommentRepo) hydrate(c *model.Comment) *model.Comment {
	if author, ok := f.authors[c.AuthorID]; ok {
		c.Author = *author
	}
	return c
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.PubDate.IsZero() {
		comment.PubDate = time.Now()
	}
	f.comments[comment.ID] = comment
	f.order = append(f.order, comment.ID)
	return nil
}

func (f *fakeCommentRepo) FindForReview(_ context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error) {
	c, ok := f.comments[commentID]
	if !ok || c.ReviewID != reviewID {
		return nil, apperror.ErrNotFound
	}
	return f.hydrate(c), nil
}

func (f *fakeCommentRepo) ListByReview(_ context.Context, reviewID uuid.UUID) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, id := range f.order {
		if c, ok := f.comments[id]; ok && c.ReviewID == reviewID {
			out = append(out, f.hydrate(c))
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := f.comments[comment.ID]; !ok {
		return apperror.ErrNotFound
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, reviewID, commentID uuid.UUID) error {
	c, ok := f.comments[commentID]
	if !ok || c.ReviewID != reviewID {
		return apperror.ErrNotFound
	}
	delete(f.comments, commentID)
	return nil
}

type fakeCodeStore struct {
	saved map[string]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{saved: make(map[string]string)}
}

func (f *fakeCodeStore) Save(_ context.Context, username, code string) error {
	f.saved[username] = code
	return nil
}

func (f *fakeCodeStore) Verify(_ context.Context, username, code string) (bool, error) {
	stored, ok := f.saved[username]
	return ok && stored == code, nil
}

type sentMail struct {
	to       string
	username string
	code     string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) SendConfirmationCode(to, username, code string) error {
	f.sent = append(f.sent, sentMail{to: to, username: username, code: code})
	return nil
}
