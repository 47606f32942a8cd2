package events

var (
	VacancyCreatedTopic = "VacancyCreatedEvent"
	VacancyLikedTopic   = "VacancyLikedEvent"
)

type VacancyCreated struct {
	VacancyID uint
	UserID    uint
	Slug      string
}

type VacancyLiked struct {
	VacancyID uint
	Likes     int
}
