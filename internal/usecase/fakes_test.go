package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"travel-reels/internal/data/entity"
	"travel-reels/internal/data/repository"
	"travel-reels/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository doubles. Each guards its map with a mutex so the
// concurrency tests exercise the same interleavings the real storage sees.

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:         &memUserRepo{users: map[uuid.UUID]*entity.User{}},
		Session:      &memSessionRepo{sessions: map[string]*entity.Session{}},
		Team:         &memTeamRepo{members: map[uuid.UUID]*entity.TeamMember{}},
		Reel:         &memReelRepo{reels: map[uuid.UUID]*entity.Reel{}},
		Like:         &memLikeRepo{likes: map[[2]uuid.UUID]*entity.Like{}},
		Booking:      &memBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		Review:       &memReviewRepo{reviews: map[uuid.UUID]*entity.Review{}},
		Notification: &memNotificationRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// recordingNotifier captures outbound sends; failErr makes every send fail.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []string
	failErr error
}

func (n *recordingNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failErr != nil {
		return n.failErr
	}
	n.sent = append(n.sent, to+": "+subject)
	return nil
}

func (n *recordingNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateVerification(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return apperr.NotFound("user not found")
	}
	stored.VerificationStatus = user.VerificationStatus
	stored.VerificationDocument = user.VerificationDocument
	stored.LegalName = user.LegalName
	stored.VerificationFeedback = user.VerificationFeedback
	return nil
}

func (r *memUserRepo) SetEmailVerified(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	stored.EmailVerified = true
	return nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *session
	r.sessions[session.Token.String()] = &clone
	return nil
}

func (r *memSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (r *memSessionRepo) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type memTeamRepo struct {
	mu      sync.Mutex
	members map[uuid.UUID]*entity.TeamMember
}

func (r *memTeamRepo) Create(_ context.Context, member *entity.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.members {
		if existing.HostID == member.HostID && existing.MemberID == member.MemberID {
			return apperr.Conflict("this user is already a team member")
		}
	}
	clone := *member
	r.members[member.ID] = &clone
	return nil
}

func (r *memTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return nil, nil
	}
	clone := *member
	return &clone, nil
}

func (r *memTeamRepo) FindByHostAndMember(_ context.Context, hostID, memberID uuid.UUID) (*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.members {
		if member.HostID == hostID && member.MemberID == memberID {
			clone := *member
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memTeamRepo) FindByHost(_ context.Context, hostID uuid.UUID) ([]*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.TeamMember
	for _, member := range r.members {
		if member.HostID == hostID {
			clone := *member
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memTeamRepo) FindByMember(_ context.Context, memberID uuid.UUID) ([]*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.TeamMember
	for _, member := range r.members {
		if member.MemberID == memberID {
			clone := *member
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memTeamRepo) Delete(_ context.Context, id, hostID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok || member.HostID != hostID {
		return apperr.NotFound("team member not found")
	}
	delete(r.members, id)
	return nil
}

type memReelRepo struct {
	mu    sync.Mutex
	reels map[uuid.UUID]*entity.Reel
}

func (r *memReelRepo) Create(_ context.Context, reel *entity.Reel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *reel
	r.reels[reel.ID] = &clone
	return nil
}

func (r *memReelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reel, ok := r.reels[id]
	if !ok {
		return nil, nil
	}
	clone := *reel
	return &clone, nil
}

func (r *memReelRepo) FindByHost(_ context.Context, hostID uuid.UUID) ([]*entity.Reel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Reel
	for _, reel := range r.reels {
		if reel.HostID == hostID {
			clone := *reel
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memReelRepo) Update(_ context.Context, reel *entity.Reel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reels[reel.ID]
	if !ok {
		return apperr.NotFound("reel not found")
	}
	stored.Title = reel.Title
	stored.Description = reel.Description
	stored.Location = reel.Location
	stored.Price = reel.Price
	stored.Category = reel.Category
	stored.IsActive = reel.IsActive
	return nil
}

func (r *memReelRepo) UpdateModeration(_ context.Context, reel *entity.Reel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reels[reel.ID]
	if !ok {
		return apperr.NotFound("reel not found")
	}
	stored.ModerationStatus = reel.ModerationStatus
	stored.ModerationFeedback = reel.ModerationFeedback
	stored.IsActive = reel.IsActive
	return nil
}

func (r *memReelRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reels[id]; !ok {
		return apperr.NotFound("reel not found")
	}
	delete(r.reels, id)
	return nil
}

func (r *memReelRepo) IncrementViews(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reel, ok := r.reels[id]
	if !ok {
		return 0, apperr.NotFound("reel not found")
	}
	reel.Views++
	return reel.Views, nil
}

func (r *memReelRepo) AddLikes(_ context.Context, id uuid.UUID, delta int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reel, ok := r.reels[id]
	if !ok {
		return 0, apperr.NotFound("reel not found")
	}
	reel.LikesCount += int64(delta)
	if reel.LikesCount < 0 {
		reel.LikesCount = 0
	}
	return reel.LikesCount, nil
}

type memLikeRepo struct {
	mu    sync.Mutex
	likes map[[2]uuid.UUID]*entity.Like
}

func (r *memLikeRepo) Find(_ context.Context, reelID, userID uuid.UUID) (*entity.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	like, ok := r.likes[[2]uuid.UUID{reelID, userID}]
	if !ok {
		return nil, nil
	}
	clone := *like
	return &clone, nil
}

func (r *memLikeRepo) Create(_ context.Context, like *entity.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uuid.UUID{like.ReelID, like.UserID}
	if _, ok := r.likes[key]; ok {
		return apperr.Conflict("already liked")
	}
	clone := *like
	r.likes[key] = &clone
	return nil
}

func (r *memLikeRepo) Delete(_ context.Context, reelID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes, [2]uuid.UUID{reelID, userID})
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func (r *memBookingRepo) CreateUnlessActive(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.TravelerID == booking.TravelerID &&
			existing.ReelID == booking.ReelID && existing.Active() {
			return apperr.Conflict("you already have an active booking for this reel")
		}
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (r *memBookingRepo) FindByTraveler(_ context.Context, travelerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.TravelerID == travelerID && !booking.DeletedByTraveler {
			clone := *booking
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (r *memBookingRepo) CountByTraveler(_ context.Context, travelerID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, booking := range r.bookings {
		if booking.TravelerID == travelerID && !booking.DeletedByTraveler {
			count++
		}
	}
	return count, nil
}

func (r *memBookingRepo) FindByHost(_ context.Context, hostID uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.HostID == hostID {
			clone := *booking
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memBookingRepo) UpdateStatusFrom(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok || booking.Status != from {
		return false, nil
	}
	booking.Status = to
	return true, nil
}

func (r *memBookingRepo) UpdateSchedule(_ context.Context, id uuid.UUID, bookingDate time.Time, guests int, totalPrice float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok || booking.Status.Terminal() {
		return false, nil
	}
	booking.BookingDate = bookingDate
	booking.Guests = guests
	booking.TotalPrice = totalPrice
	return true, nil
}

func (r *memBookingRepo) MarkDeletedByTraveler(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking, ok := r.bookings[id]; ok {
		booking.DeletedByTraveler = true
	}
	return nil
}

type memReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*entity.Review
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.BookingID == review.BookingID {
			return apperr.Conflict("this booking already has a review")
		}
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	clone := *review
	return &clone, nil
}

func (r *memReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.reviews {
		if review.BookingID == bookingID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) FindByReel(_ context.Context, reelID uuid.UUID) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Review
	for _, review := range r.reviews {
		if review.ReelID == reelID {
			clone := *review
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memReviewRepo) FindByHost(_ context.Context, hostID uuid.UUID) ([]*entity.Review, error) {
	// The SQL implementation joins through reels; the double has no reel
	// table, so host listings are exercised at the service level instead.
	return nil, nil
}

func (r *memReviewRepo) UpdateReply(_ context.Context, id uuid.UUID, reply string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return apperr.NotFound("review not found")
	}
	review.HostReply = &reply
	return nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *memNotificationRepo) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Notification
	for i := len(r.notifications) - 1; i >= 0 && len(result) < limit; i-- {
		if r.notifications[i].UserID == userID {
			clone := *r.notifications[i]
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == id && notification.UserID == userID {
			notification.IsRead = true
		}
	}
	return nil
}

func (r *memNotificationRepo) countFor(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			count++
		}
	}
	return count
}
