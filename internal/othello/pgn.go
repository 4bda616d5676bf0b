package othello

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedPGN = errors.New("malformed PGN")

var metadataRegex = regexp.MustCompile(`^\[(\S+) "(.*)"\]$`)

// PGNPlayer describes one side of a recorded game.
type PGNPlayer struct {
	Name   string
	Rating int
}

// PGNMetadata holds the tag pairs of a game record. Black is PlayerOne.
type PGNMetadata struct {
	Site    string
	Date    time.Time
	Result  string
	Players [2]PGNPlayer

	// Tags has every tag pair, including the ones parsed above.
	Tags map[string]string
}

// Player returns the metadata of p.
func (m PGNMetadata) Player(p Player) PGNPlayer {
	return m.Players[p-PlayerOne]
}

// Winner returns the winner according to the Result tag, false for a draw or
// an unknown result.
func (m PGNMetadata) Winner() (Player, bool) {
	var black, white int
	if _, err := fmt.Sscanf(m.Result, "%d-%d", &black, &white); err != nil {
		return 0, false
	}

	switch {
	case black > white:
		return PlayerOne, true
	case white > black:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// PGN is a recorded game on a standard board.
type PGN struct {
	Metadata PGNMetadata

	// Moves lists the recorded moves. Passes are only present when the record
	// contains them explicitly.
	Moves []int
}

// ParsePGN parses a game record: tag pair lines like `[Black "name"]`
// followed by the move text. Move numbers and results are skipped.
func ParsePGN(text string) (PGN, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	metadataRowCount := 0
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "[") {
			break
		}
		metadataRowCount++
	}

	metadata, err := parseMetadata(lines[:metadataRowCount])
	if err != nil {
		return PGN{}, err
	}

	moves, err := ParseMoves(strings.Join(lines[metadataRowCount:], "\n"))
	if err != nil {
		return PGN{}, err
	}

	return PGN{
		Metadata: metadata,
		Moves:    moves,
	}, nil
}

// ParseMoves parses whitespace separated moves in field notation, such as
// "f5 d6 c3". Words starting with a digit and "*" are skipped.
func ParseMoves(text string) ([]int, error) {
	board := NewBoard()
	moves := make([]int, 0)

	for _, word := range strings.Fields(text) {
		if word == "*" || word[0] >= '0' && word[0] <= '9' {
			continue
		}

		move, err := board.FieldToIndex(word)
		if err != nil {
			return nil, fmt.Errorf("%w: move %q: %w", ErrMalformedPGN, word, err)
		}

		moves = append(moves, move)
	}

	return moves, nil
}

// Game replays the first plies moves of the record. A negative plies replays
// all of them.
func (p PGN) Game(plies int) (Game, error) {
	moves := p.Moves
	if plies >= 0 && plies < len(moves) {
		moves = moves[:plies]
	}
	return NewGameFromMoves(moves)
}

// NewGameFromMoves plays moves from the starting position. PassMove passes
// explicitly; when the player to move has no legal moves before a regular
// move, the pass is added automatically.
func NewGameFromMoves(moves []int) (Game, error) {
	game := NewGame()

	for i, move := range moves {
		if move == PassMove {
			if err := game.Pass(); err != nil {
				return Game{}, fmt.Errorf("ply %d: %w", i+1, err)
			}
			continue
		}

		if game.Status() == StatusMustPass {
			game.SwapPlayers()
		}

		if err := game.PlayIndex(move); err != nil {
			return Game{}, fmt.Errorf("ply %d: %w", i+1, err)
		}
	}

	return game, nil
}

func parseMetadata(lines []string) (PGNMetadata, error) {
	metadata := PGNMetadata{
		Tags: make(map[string]string),
	}

	for _, line := range lines {
		matches := metadataRegex.FindStringSubmatch(strings.TrimSpace(line))
		if len(matches) != 3 {
			return PGNMetadata{}, fmt.Errorf("%w: tag pair %q", ErrMalformedPGN, line)
		}
		metadata.Tags[matches[1]] = matches[2]
	}

	metadata.Site = metadata.Tags["Site"]
	metadata.Result = metadata.Tags["Result"]
	metadata.Players[0].Name = metadata.Tags["Black"]
	metadata.Players[1].Name = metadata.Tags["White"]

	for i, prefix := range []string{"Black", "White"} {
		rating, err := parseRating(metadata.Tags, prefix)
		if err != nil {
			return PGNMetadata{}, err
		}
		metadata.Players[i].Rating = rating
	}

	if date, ok := metadata.Tags["Date"]; ok {
		clock, ok := metadata.Tags["Time"]
		if !ok {
			clock = "00:00:00"
		}

		parsed, err := time.Parse("2006.01.02 15:04:05", date+" "+clock)
		if err != nil {
			return PGNMetadata{}, fmt.Errorf("%w: date: %w", ErrMalformedPGN, err)
		}
		metadata.Date = parsed
	}

	return metadata, nil
}

// parseRating reads <prefix>Rating or <prefix>Elo. A missing rating is 0.
func parseRating(tags map[string]string, prefix string) (int, error) {
	value, ok := tags[prefix+"Rating"]
	if !ok {
		value, ok = tags[prefix+"Elo"]
	}
	if !ok {
		return 0, nil
	}

	rating, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s rating: %w", ErrMalformedPGN, prefix, err)
	}
	return rating, nil
}
