package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Salt mixed into the verification code so students cannot forge it by
// hashing the id alone.
const courseSalt = "INSY6500-Fall2024"

const bannerIDDigits = 9

// ReadBannerID prompts for a 9-digit banner id, asks for it twice and keeps
// prompting until both entries are valid and match. It returns the id and
// its verification code, or an error if the input stream ends first.
func ReadBannerID(in io.Reader, out io.Writer) (int64, string, error) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "Enter your %d-digit Banner ID: ", bannerIDDigits)
		first, err := readLine(scanner)
		if err != nil {
			return 0, "", err
		}

		if !isDigits(first) {
			fmt.Fprintln(out, "Error: Banner ID must contain only digits.")
			continue
		}
		if len(first) != bannerIDDigits {
			fmt.Fprintf(out, "Error: Banner ID must be exactly %d digits (you entered %d).\n", bannerIDDigits, len(first))
			continue
		}

		fmt.Fprint(out, "Re-enter your Banner ID to confirm: ")
		second, err := readLine(scanner)
		if err != nil {
			return 0, "", err
		}
		if first != second {
			fmt.Fprintln(out, "Error: Banner IDs do not match. Please try again.")
			continue
		}

		id, err := strconv.ParseInt(first, 10, 64)
		if err != nil {
			// Unreachable after the digit check, but ParseInt insists.
			return 0, "", err
		}
		return id, VerificationCode(id), nil
	}
}

// VerificationCode derives the short code a student submits alongside their
// dataset: a truncated hash of the id and the course salt.
func VerificationCode(bannerID int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d-%s", bannerID, courseSalt)))
	return hex.EncodeToString(sum[:])[:12]
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
