// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build tinygo && mcxa153

package machine

// The set and clear registers update PDOR in hardware.
const hostGPIO = false
