package csv

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"

	"github.com/hailam/fillgen/internal/ports"
)

const (
	minAge    = 15
	maxAge    = 60
	separator = ";"
	lineEnd   = "\n"
)

const (
	genderMale   = "Мужской"
	genderFemale = "Женский"
)

var (
	genders  = []string{genderMale, genderFemale}
	statuses = []string{"Активен", "Неактивен", "В ожидании"}

	maleNames = []string{
		"Александр", "Алексей", "Андрей", "Артём", "Борис", "Василий", "Виктор",
		"Дмитрий", "Евгений", "Иван", "Игорь", "Кирилл", "Максим", "Михаил",
		"Николай", "Олег", "Павел", "Роман", "Сергей", "Юрий",
	}
	femaleNames = []string{
		"Алина", "Анастасия", "Анна", "Валентина", "Виктория", "Галина", "Дарья",
		"Евгения", "Екатерина", "Елена", "Ирина", "Ксения", "Людмила", "Мария",
		"Наталья", "Ольга", "Светлана", "София", "Татьяна", "Юлия",
	}
)

// FakerRecords synthesizes tabular records with person-like descriptions.
type FakerRecords struct {
	fake faker.Faker
}

// New returns an unseeded RecordSynthesizer.
func New() ports.RecordSynthesizer {
	return &FakerRecords{fake: faker.New()}
}

// NewWithSeed returns a RecordSynthesizer whose output is fully determined by seed.
func NewWithSeed(seed int64) ports.RecordSynthesizer {
	return &FakerRecords{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

// NextRecord returns "<id>;Имя: <name>, Пол: <gender>, Возраст: <age>;<status>\n".
func (r *FakerRecords) NextRecord(id int64) string {
	gender := r.fake.RandomStringElement(genders)
	names := femaleNames
	if gender == genderMale {
		names = maleNames
	}
	name := r.fake.RandomStringElement(names)
	age := r.fake.IntBetween(minAge, maxAge)
	status := r.fake.RandomStringElement(statuses)

	description := fmt.Sprintf("Имя: %s, Пол: %s, Возраст: %d", name, gender, age)
	return fmt.Sprintf("%d%s%s%s%s%s", id, separator, description, separator, status, lineEnd)
}
