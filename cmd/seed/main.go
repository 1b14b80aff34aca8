// Command seed provisions the terminal's credentials: the sign-in account,
// the unlock PIN, and the supervisor key used to reject online orders.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/brewpos/terminal/internal/settings"
)

func main() {
	// CLI flags
	username := flag.String("username", "", "Terminal sign-in username")
	password := flag.String("password", "", "Terminal sign-in password")
	pin := flag.String("pin", "", "Unlock PIN")
	supervisorKey := flag.String("supervisor-key", "", "Supervisor key for order rejection")
	statePath := flag.String("state", "", "Settings database path")
	flag.Parse()

	// Fall back to environment variables
	if *username == "" {
		*username = os.Getenv("SEED_USERNAME")
	}
	if *password == "" {
		*password = os.Getenv("SEED_PASSWORD")
	}
	if *pin == "" {
		*pin = os.Getenv("SEED_PIN")
	}
	if *supervisorKey == "" {
		*supervisorKey = os.Getenv("SEED_SUPERVISOR_KEY")
	}
	if *statePath == "" {
		*statePath = os.Getenv("STATE_PATH")
	}

	// Fall back to defaults
	if *username == "" {
		*username = "admin"
	}
	if *password == "" {
		*password = "admin"
		log.Println("WARNING: Using default password 'admin'. Change immediately in production!")
	}
	if *pin == "" {
		*pin = "1234"
		log.Println("WARNING: Using default PIN '1234'. Change immediately in production!")
	}
	if *supervisorKey == "" {
		*supervisorKey = "supervisor"
		log.Println("WARNING: Using default supervisor key. Change immediately in production!")
	}
	if *statePath == "" {
		*statePath = "terminal.db"
	}

	store, err := settings.Open(*statePath)
	if err != nil {
		log.Fatalf("open settings store: %v", err)
	}

	if err := store.SetSecret(settings.SecretUsername, *username); err != nil {
		log.Fatalf("store username: %v", err)
	}

	for key, value := range map[string]string{
		settings.SecretPassword:      *password,
		settings.SecretPIN:           *pin,
		settings.SecretSupervisorKey: *supervisorKey,
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash %s: %v", key, err)
		}
		if err := store.SetSecret(key, string(hash)); err != nil {
			log.Fatalf("store %s: %v", key, err)
		}
	}

	log.Printf("Seeded credentials for %q into %s", *username, *statePath)
}
