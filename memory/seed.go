package memory

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"movielobby/movie"
)

// DemoMovies is the catalog a fresh instance starts with when SEED_DEMO is on.
var DemoMovies = []movie.Movie{
	{
		Title:         "Avengers Infinity War",
		Genre:         "ACTION",
		Rating:        8.7,
		StreamingLink: "https://www.abcd.com/1",
	},
	{
		Title:         "Harry Potter and the Goblet of Fire",
		Genre:         "ADVENTURE",
		Rating:        8.2,
		StreamingLink: "https://www.abcd.com/2",
	},
	{
		Title:         "Pirates of the Carribean",
		Genre:         "ADVENTURE",
		Rating:        8.5,
		StreamingLink: "https://www.abcd.com/3",
	},
	{
		Title:         "Dhamaal",
		Genre:         "COMEDY",
		Rating:        7.6,
		StreamingLink: "https://www.abcd.com/4",
	},
}

// Seed adds movies to r in order and returns how many were stored.
func Seed(ctx context.Context, r movie.Repository, movies []movie.Movie) (int, error) {
	count := 0
	for _, m := range movies {
		if _, err := r.Create(ctx, m); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// LoadCSV reads movies from a CSV with a title,genre,rating,streamingLink
// header. Columns may come in any order; rows that cannot be parsed are skipped.
func LoadCSV(src io.Reader) ([]movie.Movie, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	idx, err := parseMovieCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return movies, err
		}

		m, ok := parseMovieRecord(record, idx)
		if !ok {
			continue
		}
		movies = append(movies, m)
	}

	return movies, nil
}

type csvColumns struct {
	title, genre, rating, link int
}

func parseMovieCSVHeader(reader *csv.Reader) (csvColumns, error) {
	header, err := reader.Read()
	if err != nil {
		return csvColumns{}, err
	}

	idx := csvColumns{-1, -1, -1, -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idx.title = i
		case "genre":
			idx.genre = i
		case "rating":
			idx.rating = i
		case "streamingLink":
			idx.link = i
		}
	}
	if idx.title == -1 || idx.genre == -1 || idx.rating == -1 || idx.link == -1 {
		return csvColumns{}, errors.New("missing required columns in csv header")
	}

	return idx, nil
}

func parseMovieRecord(record []string, idx csvColumns) (movie.Movie, bool) {
	for _, i := range []int{idx.title, idx.genre, idx.rating, idx.link} {
		if i >= len(record) {
			return movie.Movie{}, false
		}
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(record[idx.rating]), 64)
	if err != nil {
		return movie.Movie{}, false
	}
	title := strings.TrimSpace(record[idx.title])
	if title == "" {
		return movie.Movie{}, false
	}

	return movie.Movie{
		Title:         title,
		Genre:         strings.TrimSpace(record[idx.genre]),
		Rating:        rating,
		StreamingLink: strings.TrimSpace(record[idx.link]),
	}, true
}
