package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/randgen-voter/internal/dispatcher"
	"github.com/spf13/cobra"
)

const (
	flagHotWalletPrivateKey = "hot-wallet-private-key"
	flagColdWalletAddress   = "cold-wallet-address"
	flagCopy                = "copy"
)

func (s *runtimeState) newRegisterVoterCommand() *cobra.Command {
	var key, address string

	cmd := &cobra.Command{
		Use:     "register-voter",
		Aliases: []string{dispatcher.CommandRegisterVoter},
		Short:   "Register the hot wallet as a voter paying rewards to a cold wallet",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := s.dispatcher.RegisterVoter(cmd.Context(), dispatcher.RegisterVoterInput{
				HotWalletPrivateKey: optionalFlag(cmd, flagHotWalletPrivateKey, key),
				ColdWalletAddress:   optionalFlag(cmd, flagColdWalletAddress, address),
			})
			return err
		},
	}
	cmd.Flags().StringVar(&key, flagHotWalletPrivateKey, "", "Hot wallet private key (overrides the configured one)")
	cmd.Flags().StringVar(&address, flagColdWalletAddress, "", "Cold wallet address receiving the rewards")

	return cmd
}

func (s *runtimeState) newCheckVotingRewardCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:     "check-voting-reward",
		Aliases: []string{dispatcher.CommandCheckVotingReward},
		Short:   "Show the voting reward accumulated by a cold wallet",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := s.dispatcher.CheckVotingReward(cmd.Context(), dispatcher.CheckVotingRewardInput{
				ColdWalletAddress: optionalFlag(cmd, flagColdWalletAddress, address),
			})
			return err
		},
	}
	cmd.Flags().StringVar(&address, flagColdWalletAddress, "", "Cold wallet address")

	return cmd
}

func (s *runtimeState) newPrintFHEKeysetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "print-fhe-keyset",
		Aliases: []string{dispatcher.CommandPrintFHEKeyset},
		Short:   "Fetch and log the published FHE keyset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := s.dispatcher.PrintFHEKeyset(cmd.Context())
			return err
		},
	}
}

func (s *runtimeState) newEncryptCommand() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "encrypt NUM",
		Short: "Encrypt an integer under the FHE keyset and log the cipher-text URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("NUM must be an integer: %w", err)
			}

			_, err = s.dispatcher.Encrypt(cmd.Context(), dispatcher.EncryptInput{
				Num:             num,
				CopyToClipboard: copyToClipboard,
			})
			return err
		},
	}
	cmd.Flags().BoolVar(&copyToClipboard, flagCopy, false, "Also copy the cipher-text URL to the clipboard")

	return cmd
}

func (s *runtimeState) newSubmitVoteCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "submit-vote CYPHER_TEXT_URL",
		Aliases: []string{dispatcher.CommandSubmitVote},
		Short:   "Submit the encrypted vote stored at CYPHER_TEXT_URL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := s.dispatcher.SubmitVote(cmd.Context(), dispatcher.SubmitVoteInput{
				CypherTextURL:       args[0],
				HotWalletPrivateKey: optionalFlag(cmd, flagHotWalletPrivateKey, key),
			})
			return err
		},
	}
	cmd.Flags().StringVar(&key, flagHotWalletPrivateKey, "", "Hot wallet private key (overrides the configured one)")

	return cmd
}

func (s *runtimeState) newVoteNonstopCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "vote-nonstop",
		Aliases: []string{dispatcher.CommandVoteNonstop},
		Short:   "Vote continuously until interrupted",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.dispatcher.VoteNonstop(cmd.Context(), dispatcher.VoteNonstopInput{
				HotWalletPrivateKey: optionalFlag(cmd, flagHotWalletPrivateKey, key),
			})
		},
	}
	cmd.Flags().StringVar(&key, flagHotWalletPrivateKey, "", "Hot wallet private key (overrides the configured one)")

	return cmd
}

// optionalFlag returns nil unless the flag was given on the command line.
func optionalFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
