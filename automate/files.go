package automate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
)

// sampleContacts is the content of the generated input file.
const sampleContacts = "Contact List:\n" +
	"Alice <alice@example.com>\n" +
	"Bob (bob.smith@work.net) is here.\n" +
	"No email here.\n" +
	"marketing-123@promo.org\n" +
	"Final Check: user@sub.domain.co\n"

// Setup creates the sample input file and removes outputs from a previous run.
//
// The sample is first written to a temporary file, then copied over the input
// file.
func (r *Runner) Setup() error {
	r.section("1. File Setup")

	tmp, err := os.CreateTemp("", "automate-input-*.txt")
	if err != nil {
		return fmt.Errorf("cannot create temporary input: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, sampleContacts); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write temporary input %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write temporary input %q: %w", tmp.Name(), err)
	}

	n, err := copyFile(tmp.Name(), r.Config.InputFile)
	if err != nil {
		return err
	}
	r.Log.Debug().Str("file", r.Config.InputFile).Str("size", humanize.Bytes(uint64(n))).Msg("sample input written")
	fmt.Fprintf(r.Out, "Created sample input file: '%s'\n", r.Config.InputFile)

	for _, f := range []string{r.Config.EmailsFile, r.Config.TitleFile} {
		err := os.Remove(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("cannot clean up previous output %q: %w", f, err)
		}
		fmt.Fprintf(r.Out, "Cleaned up previous output file: '%s'\n", f)
	}
	r.endSection()
	return nil
}

// copyFile copies 'src' onto 'dst', overwriting it, and returns the number of bytes copied.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("cannot open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("cannot create %q: %w", dst, err)
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("cannot copy %q to %q: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("cannot copy %q to %q: %w", src, dst, err)
	}
	return n, nil
}
