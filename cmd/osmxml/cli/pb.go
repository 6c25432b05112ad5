// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// meteredReader reads an extract file through a terminal progress bar.
// Closing it closes the underlying file and wipes the bar from the
// terminal, so the command's own output starts on a clean line.
type meteredReader struct {
	rdr io.ReadCloser
	bar *pb.ProgressBar
}

// WrapInputFile meters reads against the file's size on a stderr progress
// bar.  Stdin has no size to meter against and is returned as is.
func WrapInputFile(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		return os.Stdin, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New(int(fi.Size())).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = os.Stderr
	bar.Start()

	return meteredReader{
		rdr: bar.NewProxyReader(f),
		bar: bar,
	}, nil
}

func (m meteredReader) Read(p []byte) (int, error) {
	return m.rdr.Read(p)
}

func (m meteredReader) Close() error {
	// silence Finish; the escape sequence below erases the bar instead
	m.bar.Output = nil
	m.bar.NotPrint = true
	m.bar.Finish()

	fmt.Fprintf(os.Stderr, "\033[2K\r")

	return m.rdr.Close()
}
