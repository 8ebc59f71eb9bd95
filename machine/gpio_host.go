// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(tinygo && mcxa153)

package machine

// Plain memory has no set and clear aliases, so PDOR is updated directly.
const hostGPIO = true
