// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filters narrows a taxonomy to the items matching --filter
// expressions such as "island=Tenerife,height>1000".
package filters
