package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"

	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

func main() {
	// Define command line flags
	password := flag.String("password", "", "Password used to encrypt the generated key")
	signMessage := flag.String("sign", "", "Optional message to sign with the generated key, for testing verification")
	flag.Parse()

	if *password == "" {
		log.Error("Password is required")
		fmt.Println("Usage example: go run scripts/gen_oracle_key.go -password my-secret")
		os.Exit(1)
	}

	km := oracle.NewKeyManager()

	account, err := km.GenerateKeyPair()
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}

	if err := km.SaveKeyStoreEntry(account, *password); err != nil {
		log.Fatalf("Failed to save keystore entry: %v", err)
	}

	fmt.Printf("\nGenerated oracle signer:\n")
	fmt.Printf("Address: %s\n", account.PublicKey.ToBase58())
	fmt.Printf("Keystore: configs/keystore/%s.json\n", account.PublicKey.ToBase58())

	if *signMessage != "" {
		signature, err := oracle.Sign(solana.PrivateKey(account.PrivateKey), []byte(*signMessage))
		if err != nil {
			log.Fatalf("Failed to sign message: %v", err)
		}
		sig := solana.SignatureFromBytes(signature)
		fmt.Printf("Signature (base58): %s\n", sig.String())
	}
}
